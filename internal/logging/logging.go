// Package logging configures the shared logrus logger used across the relay
// and the terminal client.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Setup applies level and format to the shared logger. A nil writer keeps
// the current output.
func Setup(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	base.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	if out != nil {
		base.SetOutput(out)
	}
	return nil
}

// NewLogger returns an entry tagged with the component name.
func NewLogger(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// Base exposes the shared logger, mainly for tests and http.Server.ErrorLog.
func Base() *logrus.Logger {
	return base
}
