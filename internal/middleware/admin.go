package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const adminRealm = "3D print admin"

// RequireAdmin guards the admin panel with HTTP basic auth. An empty
// password disables the check.
func RequireAdmin(user, password string) echo.MiddlewareFunc {
	if password == "" {
		slog.Warn("ADMIN_PASSWORD not set, admin panel is unprotected")
	}

	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Skipper: func(echo.Context) bool {
			return password == ""
		},
		Realm: adminRealm,
		Validator: func(u, p string, c echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(p), []byte(password)) == 1
			if !userOK || !passOK {
				slog.Warn("admin login rejected", "ip", c.RealIP())
				return false, nil
			}
			return true, nil
		},
	})
}
