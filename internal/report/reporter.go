// Package report routes the loader's side-channel diagnostics through an
// injected interface so tests can assert on emitted events without capturing
// process output.
package report

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Reporter receives informational, warning, and error diagnostics. Calls never
// alter control flow; callers degrade and continue regardless of what the
// reporter does with the message.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ConsoleReporter writes diagnostics to stderr via zerolog's console writer.
type ConsoleReporter struct {
	logger zerolog.Logger
}

// NewConsoleReporter builds a reporter tagged with the application name and
// the run identifier.
func NewConsoleReporter(app, runID string) *ConsoleReporter {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().
		Timestamp().
		Str("app", app).
		Str("run_id", runID).
		Logger()
	return &ConsoleReporter{logger: logger}
}

func (r *ConsoleReporter) Infof(format string, args ...any) {
	r.logger.Info().Msgf(format, args...)
}

func (r *ConsoleReporter) Warnf(format string, args ...any) {
	r.logger.Warn().Msgf(format, args...)
}

func (r *ConsoleReporter) Errorf(format string, args ...any) {
	r.logger.Error().Msgf(format, args...)
}
