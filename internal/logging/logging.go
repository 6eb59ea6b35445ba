// Package logging owns the process-wide logger. The terminal is taken over by
// the alternate screen while domterm runs, so log output goes to a file (or is
// discarded) rather than to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It discards output until Configure is called.
var L = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
	Prefix:          "domterm",
})

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Configure points L at path with the given level. An empty path discards
// output. The returned closer releases the log file.
func Configure(path, level string) (io.Closer, error) {
	lvl := clog.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := clog.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return nopCloser{}, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	L.SetLevel(lvl)

	path = strings.TrimSpace(path)
	if path == "" {
		L.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nopCloser{}, fmt.Errorf("open log: %w", err)
	}
	L.SetOutput(f)
	return f, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
