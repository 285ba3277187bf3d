package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/Oklavaci/3dwebmarket/internal/session"
	"github.com/labstack/echo/v4"
)

// NewTestContext creates a new Echo context for testing. A non-nil form is
// sent as an urlencoded body.
func NewTestContext(method, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec
}

// AssertJSONResponse checks if the response is valid JSON and returns the parsed body
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// StaticLoader serves a fixed product collection.
type StaticLoader []catalog.Product

func (l StaticLoader) Load(context.Context) []catalog.Product {
	return l
}

// MemoryThemes is a ThemeStore that keeps one theme for every request.
type MemoryThemes struct {
	Current session.Theme
}

func (m *MemoryThemes) Theme(*http.Request) session.Theme {
	return session.ParseTheme(string(m.Current))
}

func (m *MemoryThemes) SetTheme(_ http.ResponseWriter, _ *http.Request, t session.Theme) error {
	m.Current = t
	return nil
}

// MemoryCredentials is a CredentialStore shared by every request.
type MemoryCredentials struct {
	Settings *github.Settings
}

func (m *MemoryCredentials) GetCredentials(*http.Request) (github.Settings, bool) {
	if m.Settings == nil {
		return github.Settings{}, false
	}
	return *m.Settings, true
}

func (m *MemoryCredentials) SetCredentials(_ http.ResponseWriter, _ *http.Request, s github.Settings) error {
	m.Settings = &s
	return nil
}

func (m *MemoryCredentials) ClearCredentials(http.ResponseWriter, *http.Request) error {
	m.Settings = nil
	return nil
}
