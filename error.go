package randgen

import (
	"os"

	"github.com/stvp/rollbar"
)

// tokenEnv names the environment variable holding the Rollbar access token.  Nothing is reported
// when it is empty.
const tokenEnv string = "RANDGEN_ROLLBAR_TOKEN"

// ErrorReporter sends unexpected errors to an external crash reporting service
type ErrorReporter interface {
	ReportError(err error)
	Wait()
}

type errorService struct {
	enabled bool
}

func newErrorReporter(c Config) ErrorReporter {
	token := os.Getenv(tokenEnv)
	if c.NoErrorReports || token == "" {
		return errorService{}
	}

	switch env := os.Getenv("environment"); env {
	case "development":
		rollbar.Environment = "development"
	default:
		rollbar.Environment = "production"
	}
	rollbar.Token = token
	return errorService{enabled: true}
}

// ReportError will send the result of an unexpected error to Rollbar.  Data is anonymous and
// consists only of the error and a stack trace.
func (e errorService) ReportError(err error) {
	if e.enabled {
		rollbar.Error(rollbar.ERR, err)
	}
}

// Wait blocks until queued reports have been sent
func (e errorService) Wait() {
	if e.enabled {
		rollbar.Wait()
	}
}
