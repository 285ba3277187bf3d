package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

type ThemeHandler struct {
	themes ThemeStore
}

func NewThemeHandler(themes ThemeStore) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// HandleToggle flips the stored theme and returns to the page it was
// triggered from.
func (h *ThemeHandler) HandleToggle(c echo.Context) error {
	r := c.Request()
	next := h.themes.Theme(r).Toggle()
	if err := h.themes.SetTheme(c.Response(), r, next); err != nil {
		slog.Error("failed to save theme", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save theme")
	}

	return c.Redirect(http.StatusSeeOther, returnPath(r.Referer()))
}

// returnPath reduces a Referer to a local path; anything else returns "/".
func returnPath(referer string) string {
	if referer == "" {
		return "/"
	}
	u, err := url.Parse(referer)
	if err != nil {
		return "/"
	}

	path := u.RequestURI()
	if sanitized, ok := sanitizeReturnTo(path); ok {
		return sanitized
	}
	return "/"
}

func sanitizeReturnTo(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	if strings.ContainsAny(path, "\r\n") {
		return "", false
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "//") {
		return "", false
	}

	if !strings.HasPrefix(path, "/") {
		return "", false
	}

	// Form endpoints only accept POST.
	if strings.HasPrefix(path, "/theme") || strings.HasPrefix(path, "/admin/github/") {
		return "", false
	}

	return path, true
}
