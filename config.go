package randgen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BTBurke/randgen/pkg/rng"
	"github.com/hashicorp/go-hclog"
)

// Types lists the value types that can be generated, in the order they are shown in help text
var Types = []string{"i8", "i16", "i32", "i64", "isize", "u8", "u16", "u32", "u64", "usize", "f32", "f64", "bool", "factor"}

const (
	FormatText   string = "text"
	FormatLogfmt string = "logfmt"
)

type Config struct {
	Algorithm      rng.Kind
	Seed           uint64
	Type           string
	Minimum        string
	Maximum        string
	Probability    float32
	Count          int
	Format         string
	Summary        bool
	Rounding       rng.Rounding
	LogLevel       hclog.Level
	NoErrorReports bool

	seeded         bool
	probabilitySet bool
	logOutput      io.Writer
}

type ConfigOption func(c *Config) error

func newConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Algorithm:   rng.KindXoroshiro128Plus,
		Type:        "u64",
		Probability: 0.5,
		Count:       1,
		Format:      FormatText,
		Rounding:    rng.RoundingInherited,
		LogLevel:    hclog.Warn,
		logOutput:   os.Stderr,
	}

	var errors []error
	for _, option := range options {
		err := option(&c)
		if err != nil {
			errors = append(errors, err)
		}
	}
	if !knownType(c.Type) {
		errors = append(errors, fmt.Errorf("unknown type %s, use one of %s", c.Type, strings.Join(Types, ", ")))
	}
	if c.ranged() {
		switch {
		case c.Type == "bool" || c.Type == "factor":
			errors = append(errors, fmt.Errorf("min and max can not be used with type %s", c.Type))
		case c.Minimum == "" || c.Maximum == "":
			errors = append(errors, fmt.Errorf("min and max must be used together"))
		}
	}
	if c.probabilitySet && c.Type != "bool" {
		errors = append(errors, fmt.Errorf("probability can only be used with type bool"))
	}

	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

// ranged returns true if either bound was set
func (c Config) ranged() bool {
	return c.Minimum != "" || c.Maximum != ""
}

func knownType(t string) bool {
	for _, k := range Types {
		if k == t {
			return true
		}
	}
	return false
}

func Algorithm(name string) ConfigOption {
	return func(c *Config) error {
		kind, err := rng.ParseKind(name)
		if err != nil {
			return fmt.Errorf("unknown algorithm %s, use one of splitmix64, xoroshiro128plus, xorshift128plus", name)
		}
		c.Algorithm = kind
		return nil
	}
}

// Seed sets a fixed seed.  Decimal, hex (0x) and octal (0o) values are accepted.  Without a seed,
// one is drawn from the system entropy source.
func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to an unsigned 64-bit integer: %s", seed)
		}
		c.Seed = s
		c.seeded = true
		return nil
	}
}

func Type(t string) ConfigOption {
	return func(c *Config) error {
		c.Type = strings.ToLower(t)
		return nil
	}
}

// Minimum sets the inclusive lower bound.  Bounds are parsed when the generator is created because
// their format depends on the type.
func Minimum(value string) ConfigOption {
	return func(c *Config) error {
		c.Minimum = value
		return nil
	}
}

func Maximum(value string) ConfigOption {
	return func(c *Config) error {
		c.Maximum = value
		return nil
	}
}

// Probability sets the chance of true for type bool.  It is an error with any other type.
func Probability(p string) ConfigOption {
	return func(c *Config) error {
		prob, err := strconv.ParseFloat(p, 32)
		if err != nil || prob < 0.0 || prob > 1.0 {
			return fmt.Errorf("probability must be a number between 0 and 1: %s", p)
		}
		c.Probability = float32(prob)
		c.probabilitySet = true
		return nil
	}
}

func Count(n string) ConfigOption {
	return func(c *Config) error {
		count, err := strconv.Atoi(n)
		if err != nil {
			return fmt.Errorf("could not convert count to integer")
		}
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}
		c.Count = count
		return nil
	}
}

func Format(f string) ConfigOption {
	return func(c *Config) error {
		switch f {
		case FormatText, FormatLogfmt:
			c.Format = f
			return nil
		default:
			return fmt.Errorf("unknown format %s, use text or logfmt", f)
		}
	}
}

func Summary() ConfigOption {
	return func(c *Config) error {
		c.Summary = true
		return nil
	}
}

// SymmetricRounding makes int32 ranges round the same way as every other integer type so that the
// maximum bound can be produced.  This changes the values generated for int32 ranges.
func SymmetricRounding() ConfigOption {
	return func(c *Config) error {
		c.Rounding = rng.RoundingSymmetric
		return nil
	}
}

func LogLevel(level string) ConfigOption {
	return func(c *Config) error {
		l, err := parseLevel(level)
		if err != nil {
			return err
		}
		c.LogLevel = l
		return nil
	}
}

// LogOutput redirects log messages, which go to stderr by default
func LogOutput(w io.Writer) ConfigOption {
	return func(c *Config) error {
		c.logOutput = w
		return nil
	}
}

func NoErrorReports() ConfigOption {
	return func(c *Config) error {
		c.NoErrorReports = true
		return nil
	}
}
