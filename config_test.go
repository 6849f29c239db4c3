package randgen

import (
	"testing"

	"github.com/BTBurke/randgen/pkg/rng"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	c, errs := newConfig()
	assert.Len(t, errs, 0)
	assert.Equal(t, rng.KindXoroshiro128Plus, c.Algorithm)
	assert.Equal(t, "u64", c.Type)
	assert.Equal(t, 1, c.Count)
	assert.Equal(t, float32(0.5), c.Probability)
	assert.Equal(t, FormatText, c.Format)
	assert.Equal(t, rng.RoundingInherited, c.Rounding)
	assert.Equal(t, hclog.Warn, c.LogLevel)
	assert.False(t, c.seeded)
}

func TestConfigOptions(t *testing.T) {
	c, errs := newConfig(
		Algorithm("splitmix"),
		Seed("0x2a"),
		Type("I32"),
		Minimum("-3"),
		Maximum("3"),
		Count("10"),
		Format("logfmt"),
		Summary(),
		SymmetricRounding(),
		LogLevel("silent"),
		NoErrorReports(),
	)
	assert.Len(t, errs, 0)
	assert.Equal(t, rng.KindSplitMix64, c.Algorithm)
	assert.Equal(t, uint64(42), c.Seed)
	assert.True(t, c.seeded)
	assert.Equal(t, "i32", c.Type)
	assert.True(t, c.ranged())
	assert.Equal(t, 10, c.Count)
	assert.Equal(t, FormatLogfmt, c.Format)
	assert.True(t, c.Summary)
	assert.Equal(t, rng.RoundingSymmetric, c.Rounding)
	assert.Equal(t, hclog.Off, c.LogLevel)
	assert.True(t, c.NoErrorReports)
}

func TestConfigErrors(t *testing.T) {
	tt := []struct {
		Name    string
		Options []ConfigOption
		Errors  int
	}{
		{Name: "unknown algorithm", Options: []ConfigOption{Algorithm("mt19937")}, Errors: 1},
		{Name: "negative seed", Options: []ConfigOption{Seed("-1")}, Errors: 1},
		{Name: "unknown type", Options: []ConfigOption{Type("i128")}, Errors: 1},
		{Name: "min without max", Options: []ConfigOption{Minimum("1")}, Errors: 1},
		{Name: "max without min", Options: []ConfigOption{Maximum("1")}, Errors: 1},
		{Name: "range on bool", Options: []ConfigOption{Type("bool"), Minimum("0"), Maximum("1")}, Errors: 1},
		{Name: "range on factor", Options: []ConfigOption{Type("factor"), Minimum("0"), Maximum("1")}, Errors: 1},
		{Name: "probability above one", Options: []ConfigOption{Probability("1.5")}, Errors: 1},
		{Name: "probability not a number", Options: []ConfigOption{Probability("half")}, Errors: 1},
		{Name: "probability on integer", Options: []ConfigOption{Type("i32"), Probability("0.25")}, Errors: 1},
		{Name: "probability on default type", Options: []ConfigOption{Probability("0.25")}, Errors: 1},
		{Name: "probability on factor", Options: []ConfigOption{Type("factor"), Probability("0.25")}, Errors: 1},
		{Name: "zero count", Options: []ConfigOption{Count("0")}, Errors: 1},
		{Name: "count not a number", Options: []ConfigOption{Count("many")}, Errors: 1},
		{Name: "unknown format", Options: []ConfigOption{Format("json")}, Errors: 1},
		{Name: "unknown log level", Options: []ConfigOption{LogLevel("loud")}, Errors: 1},
		{Name: "errors are collected", Options: []ConfigOption{Count("0"), Format("json"), Type("i128")}, Errors: 3},
	}
	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			_, errs := newConfig(tc.Options...)
			assert.Len(t, errs, tc.Errors)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tt := []struct {
		in  string
		exp hclog.Level
	}{
		{in: "debug", exp: hclog.Debug},
		{in: "verb", exp: hclog.Trace},
		{in: "info", exp: hclog.Info},
		{in: "notice", exp: hclog.Info},
		{in: "warn", exp: hclog.Warn},
		{in: "error", exp: hclog.Error},
		{in: "silent", exp: hclog.Off},
	}
	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			l, err := parseLevel(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, l)
		})
	}
}
