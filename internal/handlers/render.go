package handlers

import (
	"net/http"
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/session"
	"github.com/Oklavaci/3dwebmarket/views/layout"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render renders a templ component and writes it to the response
func Render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// ThemeStore persists the visitor's theme choice.
type ThemeStore interface {
	Theme(r *http.Request) session.Theme
	SetTheme(w http.ResponseWriter, r *http.Request, t session.Theme) error
}

// Pages builds the layout frame shared by every HTML page.
type Pages struct {
	SiteURL string
	Themes  ThemeStore
	Now     func() time.Time
}

func NewPages(siteURL string, themes ThemeStore) *Pages {
	return &Pages{SiteURL: siteURL, Themes: themes, Now: time.Now}
}

// Page returns the frame for the page called name.
func (p *Pages) Page(c echo.Context, name string) layout.Page {
	theme := session.ThemeDark
	if p.Themes != nil {
		theme = p.Themes.Theme(c.Request())
	}
	return layout.Page{
		Meta:  layout.NewPageMeta(p.SiteURL, c.Request().RequestURI),
		Theme: theme,
		Name:  name,
		Now:   p.Now(),
	}
}
