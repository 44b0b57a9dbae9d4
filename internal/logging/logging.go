// Package logging builds the process logger and carries the per-request
// logger through gin handlers.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// New returns a JSON logger, or a text logger when format is "text".
// Unknown levels fall back to info. A nil out writes to stdout.
func New(level, format string, out io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: utcTime}
	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(out, opts))
	}
	return slog.New(slog.NewJSONHandler(out, opts))
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Time(slog.TimeKey, a.Value.Time().UTC())
	}
	return a
}

const requestKey = "portfolio.logger"

// Attach stores l as the logger for the rest of c's handler chain.
func Attach(c *gin.Context, l *slog.Logger) {
	c.Set(requestKey, l)
}

// Request returns the logger attached to c, or slog.Default.
func Request(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(requestKey); ok {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
