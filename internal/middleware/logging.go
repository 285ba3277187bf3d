package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs one line per request. Handler errors are passed to the
// echo error handler first so the logged status is the one sent.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			}

			slog.Log(c.Request().Context(), level, "request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)

			return nil
		}
	}
}
