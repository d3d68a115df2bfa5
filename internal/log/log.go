// Package log writes structured JSON action entries enriched with request
// metadata from the Fiber context.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Init redirects log output, optionally in human-readable form.
func Init(w io.Writer, pretty bool) {
	if pretty {
		logger.Store(slog.New(slog.NewTextHandler(w, nil)))
		return
	}
	logger.Store(slog.New(slog.NewJSONHandler(w, nil)))
}

func write(level slog.Level, c *fiber.Ctx, action string, err error, fields map[string]any) {
	attrs := []any{slog.String("action", action)}
	if c != nil {
		attrs = append(attrs,
			slog.String("ip", c.IP()),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			attrs = append(attrs, slog.String("req_id", rid))
		}
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	logger.Load().Log(context.Background(), level, action, attrs...)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelInfo, c, action, nil, fields)
}

// Audit records a state-changing user or admin action.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelInfo, c, action, nil, fields)
}

// Security records denied access, throttling and validation rejections.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(slog.LevelWarn, c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(slog.LevelError, c, action, err, fields)
}
