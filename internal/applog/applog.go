// Package applog configures the editor's single logger. The editor owns
// the terminal while it runs, so logs never go to stdout or stderr; they
// are only useful when a log file was configured.
package applog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to path. An empty path discards all log
// output, so callers can always pass the result to log.SetDefault without
// checking whether logging was enabled.
func New(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.NewWithOptions(io.Discard, log.Options{}), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
	})
	return logger, func() { _ = f.Close() }, nil
}
