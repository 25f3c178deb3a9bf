// Package cli implements the tabgrid command-line interface.
//
// This package provides commands for inspecting and editing the widget
// layout of the new-tab page, exporting it as a stylesheet or diagram,
// serving the editing API, and managing the settings store. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - show: Print the stored layout as a grid preview or JSON
//   - move, span, align, widget, density, reset: One-shot layout edits
//   - edit: Interactive layout toolbox
//   - render: Export CSS, DOT, SVG, PDF or PNG
//   - serve: HTTP editing API
//   - store: Locate or clear the settings document
//
// # Configuration
//
// Settings come from the TOML file named by --config (default
// ~/.config/tabgrid/config.toml), then TABGRID_* environment variables, then
// the --profile and --store flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context and injected into the editor, the settings
// writer and the HTTP server.
//
// # Example
//
//	import "github.com/matzehuels/tabgrid/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, stamped "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logLevel resolves the configured level name. --verbose wins over the
// config; an empty name means info. ok is false for names the log package
// does not know, in which case info is used.
func logLevel(name string, verbose bool) (level log.Level, ok bool) {
	if verbose {
		return log.DebugLevel, true
	}
	if name == "" {
		return log.InfoLevel, true
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, false
	}
	return level, true
}

// logElapsed logs msg at info level with the time since start, rounded to
// the millisecond, as the "elapsed" key.
func logElapsed(l *log.Logger, start time.Time, msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(start).Round(time.Millisecond))
	l.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by setup, or log.Default() for
// code running outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
