package middleware

import (
	"log/slog"

	"abacus/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger returns the HTTP access log middleware. Health probes and
// static assets are only logged in debug mode.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	logCfg := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    cfg.Env.Debug,
	}
	if !cfg.Env.Debug {
		logCfg.Filters = []slogecho.Filter{
			slogecho.IgnorePath("/health"),
			slogecho.IgnorePathPrefix("/static/"),
		}
	}

	return slogecho.NewWithConfig(logger.With(slog.String("component", "http")), logCfg)
}
