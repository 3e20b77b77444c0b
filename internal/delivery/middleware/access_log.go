package middleware

import (
	"context"
	"log/slog"

	deliverycontext "todoez/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// AccessLog writes one line per request. With verbose off only server
// failures are written.
//
// HandleError runs the server's error handler before logging so the line
// carries the status that was actually sent.
func AccessLog(logger *slog.Logger, verbose bool) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		HandleError:  true,
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			level := accessLogLevel(v.Status)
			if !verbose && level < slog.LevelError {
				return nil
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("user_agent", v.UserAgent),
			}
			if query := c.Request().URL.RawQuery; query != "" {
				attrs = append(attrs, slog.String("query", query))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			deliverycontext.LoggerFrom(c.Request().Context(), logger).
				LogAttrs(context.Background(), level, "HTTP request", attrs...)

			return nil
		},
	})
}

func accessLogLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
