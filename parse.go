package randgen

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures the generator from command line options or from a YAML configuration
// file passed with the -c flag.  Returns a slice of functional options that can be applied to the
// configuration.
func ParseCommandLine() ([]ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	if options.err != nil {
		return options.options, options.err
	}
	if len(pf.Args()) > 0 {
		return options.options, fmt.Errorf("unexpected arguments: %s", strings.Join(pf.Args(), " "))
	}
	return options.options, nil
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("randgen", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of randgen:\nrandgen <options>\n")
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
		fmt.Printf("\n\nExamples:\n\nrandgen -t i32 --min 1 --max 6 -n 10\nrandgen -a splitmix64 -s 42 -t f64 --summary -n 100000\n")
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.StringP("algorithm", "a", "xoroshiro128plus", "Generator algorithm: splitmix64, xoroshiro128plus or xorshift128plus")
	pf.StringP("seed", "s", "", "Seed for the generator.  The same seed always produces the same values.  Defaults to a seed from the system entropy source.")
	pf.StringP("type", "t", "u64", fmt.Sprintf("Type of value to generate: %s", strings.Join(Types, ", ")))
	pf.String("min", "", "Inclusive lower bound.  Must be used with --max.")
	pf.String("max", "", "Inclusive upper bound.  Must be used with --min.")
	pf.StringP("probability", "p", "0.5", "Probability of true for type bool")
	pf.IntP("count", "n", 1, "Number of values to generate")
	pf.StringP("format", "f", "text", "Output format: text or logfmt")
	pf.Bool("summary", false, "Write count, min, max, mean and standard deviation after the values")
	pf.Bool("symmetric-rounding", false, "Round int32 ranges like every other integer type so the maximum can be produced.  Changes the values generated for i32 ranges.")
	pf.StringP("log-level", "l", "warn", "Log level: debug, verb, info, warn, error, silent")
	pf.Bool("no-error-reports", false, "Do not send reports when there are unexpected errors")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			if option != nil {
				o.options = append(o.options, option)
			}
		}
		return nil
	}
}

// handleOption converts a flag or YAML key into an option.  Boolean options return nil when
// explicitly set to false.
func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "algorithm":
		return Algorithm(value), nil
	case "seed":
		return Seed(value), nil
	case "type":
		return Type(value), nil
	case "min":
		return Minimum(value), nil
	case "max":
		return Maximum(value), nil
	case "probability":
		return Probability(value), nil
	case "count":
		return Count(value), nil
	case "format":
		return Format(value), nil
	case "summary":
		return boolOption(name, value, Summary())
	case "symmetric-rounding":
		return boolOption(name, value, SymmetricRounding())
	case "log-level":
		return LogLevel(value), nil
	case "no-error-reports":
		return boolOption(name, value, NoErrorReports())
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

func boolOption(name string, value string, option ConfigOption) (ConfigOption, error) {
	if value == "" {
		return option, nil
	}
	set, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s, should be true or false: %s", name, value)
	}
	if !set {
		return nil, nil
	}
	return option, nil
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		if k == "config" {
			return options, fmt.Errorf("config files can not include other config files")
		}

		var value string
		switch val := v.(type) {
		case string:
			value = val
		case int:
			value = strconv.Itoa(val)
		case uint64:
			value = strconv.FormatUint(val, 10)
		case float64:
			value = strconv.FormatFloat(val, 'g', -1, 64)
		case bool:
			value = strconv.FormatBool(val)
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}

		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		if opt != nil {
			options = append(options, opt)
		}
	}
	return options, nil
}
