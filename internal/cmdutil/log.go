// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger returns the run logger on dst (normally stderr). level is a
// charm log level name; an unknown name falls back to info with a warning.
func NewLogger(dst io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(dst, log.Options{Prefix: "hydropathy"})
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("unknown log level, defaulting to info", "provided", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}
