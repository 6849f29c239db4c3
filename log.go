package randgen

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
)

func parseLevel(level string) (hclog.Level, error) {
	switch level {
	case "debug":
		return hclog.Debug, nil
	case "verbose", "verb", "trace":
		return hclog.Trace, nil
	case "notice", "info":
		return hclog.Info, nil
	case "warning", "warn":
		return hclog.Warn, nil
	case "error":
		return hclog.Error, nil
	case "quiet", "silent", "off":
		return hclog.Off, nil
	default:
		return hclog.NoLevel, fmt.Errorf("invalid log level: %s, use one of debug, verb, info, warn, error, silent", level)
	}
}

func newLogger(level hclog.Level, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "randgen",
		Level:  level,
		Output: w,
	})
}
