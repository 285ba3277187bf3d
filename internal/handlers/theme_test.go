package handlers

import (
	"net/http"
	"testing"

	"github.com/Oklavaci/3dwebmarket/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeHandleToggle(t *testing.T) {
	themes := &MemoryThemes{Current: session.ThemeDark}
	h := NewThemeHandler(themes)

	c, rec := NewTestContext(http.MethodPost, "/theme", nil)
	c.Request().Header.Set("Referer", "https://example.com/product?id=3")
	require.NoError(t, h.HandleToggle(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/product?id=3", rec.Header().Get("Location"))
	assert.Equal(t, session.ThemeLight, themes.Current)

	c, _ = NewTestContext(http.MethodPost, "/theme", nil)
	require.NoError(t, h.HandleToggle(c))
	assert.Equal(t, session.ThemeDark, themes.Current)
}

func TestThemeRendersInLayout(t *testing.T) {
	themes := &MemoryThemes{Current: session.ThemeLight}
	h := NewBringHandler(NewPages("https://example.com", themes))

	c, rec := NewTestContext(http.MethodGet, "/bring", nil)
	require.NoError(t, h.HandleForm(c))

	assert.Contains(t, rec.Body.String(), `data-theme="light"`)
	assert.Contains(t, rec.Body.String(), session.ThemeLight.Icon())
}

func TestReturnPath(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"empty", "", "/"},
		{"same_site_page", "https://example.com/bring", "/bring"},
		{"keeps_query", "http://localhost:8080/?q=vase&category=Decor", "/?q=vase&category=Decor"},
		{"theme_endpoint", "https://example.com/theme", "/"},
		{"admin_action", "https://example.com/admin/github/publish", "/"},
		{"admin_dashboard", "https://example.com/admin", "/admin"},
		{"unparseable", "http://[::1", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, returnPath(tt.referer))
		})
	}
}

func TestSanitizeReturnTo(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   string
		wantOK bool
	}{
		{"relative_path", "/product?id=1", "/product?id=1", true},
		{"empty", "", "", false},
		{"absolute_url", "https://evil.example", "", false},
		{"protocol_relative", "//evil.example", "", false},
		{"no_leading_slash", "product", "", false},
		{"header_injection", "/a\r\nSet-Cookie: x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sanitizeReturnTo(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
