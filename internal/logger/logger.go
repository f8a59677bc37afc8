// =============================================================================
// EFD Contribuicoes Toolkit - Logging
// =============================================================================
//
// Every stage logs through logrus. Terminals get the text formatter; log
// shippers get JSON. Stages receive a *logrus.Entry already carrying the
// session and file fields, so their own calls only add what is local.
//
// =============================================================================

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configure a logger.
type Options struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string

	// Format is "text" or "json".
	Format string

	// Output defaults to stderr.
	Output io.Writer
}

// New builds a logrus logger from options.
func New(opts Options) (*logrus.Logger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(defaultString(opts.Level, "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	l.SetLevel(level)

	switch strings.ToLower(defaultString(opts.Format, "text")) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	return l, nil
}

// Discard returns a logger that drops everything. Used as the default of
// library entry points and in tests.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// LogError logs err with the module and function that produced it.
func LogError(log logrus.FieldLogger, module, funcName string, err error) {
	log.WithFields(logrus.Fields{
		"module":   module,
		"funcName": funcName,
	}).Error(err.Error())
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
