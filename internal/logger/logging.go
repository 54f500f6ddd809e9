// Package logger builds the prefixed loggers dym components write to.
package logger

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger for one component (the IPC server logs under
// "ipc", and so on). The level is inherited from the package-level logger at
// creation time, so the -d flag reaches every prefix set up after flag
// parsing.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           log.GetLevel(),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}
