package randgen

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"strconv"

	"github.com/BTBurke/randgen/pkg/rng"
	"github.com/BTBurke/randgen/pkg/stat"
	"github.com/go-logfmt/logfmt"
	"github.com/hashicorp/go-hclog"
)

// Command draws values from a seeded generator and writes them out
type Command struct {
	Config Config
	// Seed is the seed actually used, either configured or drawn from the entropy source
	Seed uint64

	prng    *rng.Prng
	sample  sampler
	logger  hclog.Logger
	errors  ErrorReporter
	entropy io.Reader
}

// New configures a generator from options
func New(options ...ConfigOption) (*Command, []error) {
	cfg, errs := newConfig(options...)
	if len(errs) > 0 {
		return nil, errs
	}
	c := &Command{
		Config:  cfg,
		logger:  newLogger(cfg.LogLevel, cfg.logOutput),
		errors:  newErrorReporter(cfg),
		entropy: rand.Reader,
	}

	sample, err := newSampler(cfg)
	if err != nil {
		return nil, []error{err}
	}
	c.sample = sample
	if reversed(cfg) {
		c.logger.Warn("min is greater than max, values will not be constrained to the range", "min", cfg.Minimum, "max", cfg.Maximum)
	}
	if wrapped(cfg) {
		c.logger.Warn("span between min and max overflows the type, values will not be constrained to the range", "type", cfg.Type, "min", cfg.Minimum, "max", cfg.Maximum)
	}

	c.Seed = c.seed()
	p, err := rng.New(cfg.Algorithm, c.Seed, rng.WithRounding(cfg.Rounding))
	if err != nil {
		return nil, []error{err}
	}
	c.prng = p
	if cfg.seeded {
		c.logger.Info("generator seeded", "algorithm", cfg.Algorithm.String(), "seed", c.Seed, "rounding", cfg.Rounding.String())
	} else {
		// entropy seeds are only recoverable from the log, so they are shown at the default level
		c.logger.Warn("generator seeded from entropy, use --seed to repeat this run", "algorithm", cfg.Algorithm.String(), "seed", c.Seed, "rounding", cfg.Rounding.String())
	}
	return c, nil
}

func (c *Command) seed() uint64 {
	if c.Config.seeded {
		return c.Config.Seed
	}
	s, err := entropySeed(c.entropy)
	if err != nil {
		c.logger.Warn("falling back to clock seed", "error", err)
		c.errors.ReportError(err)
		return clockSeed()
	}
	return s
}

// Run writes Count values to w, one per line, followed by a summary if configured
func (c *Command) Run(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := logfmt.NewEncoder(bw)
	summary := &stat.Summary{}

	for i := 1; i <= c.Config.Count; i++ {
		text, value := c.sample(c.prng)
		if c.Config.Summary {
			summary.Record(value)
		}
		if err := c.write(bw, enc, i, text); err != nil {
			c.errors.ReportError(err)
			return fmt.Errorf("failed to write value %d: %w", i, err)
		}
	}
	if c.Config.Summary {
		if err := writeSummary(enc, c.Seed, summary); err != nil {
			c.errors.ReportError(err)
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		c.errors.ReportError(err)
		return fmt.Errorf("failed to flush output: %w", err)
	}
	c.logger.Debug("generation complete", "count", c.Config.Count)
	return nil
}

// Wait blocks until pending error reports have been sent
func (c *Command) Wait() {
	c.errors.Wait()
}

func (c *Command) write(w io.Writer, enc *logfmt.Encoder, n int, value string) error {
	switch c.Config.Format {
	case FormatLogfmt:
		if err := enc.EncodeKeyvals("n", n, "algorithm", c.Config.Algorithm.String(), "type", c.Config.Type, "value", value); err != nil {
			return err
		}
		return enc.EndRecord()
	default:
		_, err := fmt.Fprintln(w, value)
		return err
	}
}

func writeSummary(enc *logfmt.Encoder, seed uint64, s *stat.Summary) error {
	err := enc.EncodeKeyvals(
		"seed", seed,
		"count", s.Count(),
		"min", formatFloat(s.Min()),
		"max", formatFloat(s.Max()),
		"mean", formatFloat(s.Mean()),
		"stddev", formatFloat(s.StdDev()),
	)
	if err != nil {
		return err
	}
	return enc.EndRecord()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
