// Package cli implements the diffform command-line interface.
//
// The CLI evaluates exterior-calculus worksheets (see internal/worksheet)
// and is built using cobra, with logging through charmbracelet/log.
//
// # Commands
//
//   - eval:  run a worksheet and print "name = value" per step
//   - check: validate a worksheet without evaluating it
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces the canonicalization pipeline. Loggers are passed through
// context.Context and always write to stderr, leaving stdout to results.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the stderr logger shared by every command. Timestamps
// are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          "diffform",
		Level:           level,
	})
}

// stepProgress reports how far a command got through a worksheet's steps
// and how long it took.
type stepProgress struct {
	logger *log.Logger
	total  int
	start  time.Time
}

func newStepProgress(l *log.Logger, total int) *stepProgress {
	return &stepProgress{logger: l, total: total, start: time.Now()}
}

// done logs e.g. "Evaluated 4/4 steps elapsed=12ms". A run that stopped
// short of total is logged as a warning.
func (p *stepProgress) done(verb string, n int) {
	msg := fmt.Sprintf("%s %d/%d steps", verb, n, p.total)
	elapsed := time.Since(p.start).Round(time.Millisecond)
	if n < p.total {
		p.logger.Warn(msg, "elapsed", elapsed)
		return
	}
	p.logger.Info(msg, "elapsed", elapsed)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command's
// PersistentPreRun, or log.Default() when a command runs without it.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
