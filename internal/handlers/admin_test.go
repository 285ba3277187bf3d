package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGitHub records contents API writes for acme/site.
type fakeGitHub struct {
	mu     sync.Mutex
	writes map[string]string
}

func newFakeGitHub(t *testing.T) (*fakeGitHub, string) {
	t.Helper()
	f := &fakeGitHub{writes: make(map[string]string)}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv.URL
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer good-token" {
		http.Error(w, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
		return
	}
	if r.URL.Path == "/repos/acme/site" {
		_, _ = w.Write([]byte(`{"full_name":"acme/site","default_branch":"main"}`))
		return
	}

	p := strings.TrimPrefix(r.URL.Path, "/repos/acme/site/contents/")
	switch r.Method {
	case http.MethodGet:
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	case http.MethodPut:
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.writes[p] = body.Message
		_, _ = w.Write([]byte(`{"content":{"path":"` + p + `","sha":"0123456789abcdef"}}`))
	}
}

func (f *fakeGitHub) written() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.writes))
	for k, v := range f.writes {
		out[k] = v
	}
	return out
}

func newTestAdminHandler(creds *MemoryCredentials, baseURL string) *AdminHandler {
	return NewAdminHandler(creds, testProducts, NewPages("https://example.com", &MemoryThemes{}), github.WithBaseURL(baseURL))
}

func savedSettings(token string) *MemoryCredentials {
	return &MemoryCredentials{Settings: &github.Settings{Owner: "acme", Repo: "site", Branch: "main", Token: token}}
}

func TestAdminDashboardDefaults(t *testing.T) {
	h := newTestAdminHandler(&MemoryCredentials{}, "http://unused")

	c, rec := NewTestContext(http.MethodGet, "/admin", nil)
	require.NoError(t, h.HandleDashboard(c))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `name="owner" value="mevlut-celik"`)
	assert.Contains(t, body, `name="branch" value="main"`)
	assert.Contains(t, body, "The site currently serves 3 products.")
}

func TestAdminDashboardNeverRendersToken(t *testing.T) {
	h := newTestAdminHandler(savedSettings("ghp_supersecret"), "http://unused")

	c, rec := NewTestContext(http.MethodGet, "/admin", nil)
	require.NoError(t, h.HandleDashboard(c))

	assert.NotContains(t, rec.Body.String(), "ghp_supersecret")
	assert.Contains(t, rec.Body.String(), "A token is saved")
}

func TestAdminSaveSettings(t *testing.T) {
	creds := savedSettings("old-token")
	h := newTestAdminHandler(creds, "http://unused")

	c, rec := NewTestContext(http.MethodPost, "/admin/github/settings", url.Values{
		"owner":  {" other "},
		"repo":   {"shop"},
		"branch": {""},
		"token":  {""},
	})
	require.NoError(t, h.HandleSaveSettings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Settings saved (this browser only).")
	assert.Equal(t, github.Settings{Owner: "other", Repo: "shop", Branch: "main", Token: "old-token"}, *creds.Settings)

	c, _ = NewTestContext(http.MethodPost, "/admin/github/settings", url.Values{
		"owner": {"other"}, "repo": {"shop"}, "token": {"new-token"},
	})
	require.NoError(t, h.HandleSaveSettings(c))
	assert.Equal(t, "new-token", creds.Settings.Token)
}

func TestAdminTestConnection(t *testing.T) {
	_, baseURL := newFakeGitHub(t)

	tests := []struct {
		name       string
		creds      *MemoryCredentials
		wantStatus int
		wantBody   string
	}{
		{"success", savedSettings("good-token"), http.StatusOK, "GitHub connection succeeded: acme/site"},
		{"bad_token", savedSettings("bad-token"), http.StatusBadGateway, "Error: GitHub request failed: 401"},
		{"nothing_saved", &MemoryCredentials{}, http.StatusBadRequest, "Error: save settings with a token first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestAdminHandler(tt.creds, baseURL)
			c, rec := NewTestContext(http.MethodPost, "/admin/github/test", url.Values{})
			require.NoError(t, h.HandleTestConnection(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminPublish(t *testing.T) {
	gh, baseURL := newFakeGitHub(t)
	h := newTestAdminHandler(savedSettings("good-token"), baseURL)

	c, rec := NewTestContext(http.MethodPost, "/admin/github/publish", url.Values{
		"products": {`{"products":[{"id":1,"code":"X1","name":"Bracket","stockStatus":"in_stock"}]}`},
	})
	require.NoError(t, h.HandlePublish(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Published 1 products (revision 0123456).")
	assert.Equal(t, map[string]string{github.ProductsPath: "Update products.json (1 products)"}, gh.written())
}

func TestAdminPublishRejectsBadCatalog(t *testing.T) {
	tests := []struct {
		name       string
		products   string
		wantStatus int
		wantBody   string
	}{
		{"empty", "  ", http.StatusBadRequest, "products.json is empty"},
		{"invalid_json", "{not json", http.StatusUnprocessableEntity, "parse products"},
		{"duplicate_ids", `{"products":[{"id":"1"},{"id":"1"}]}`, http.StatusUnprocessableEntity, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh, baseURL := newFakeGitHub(t)
			h := newTestAdminHandler(savedSettings("good-token"), baseURL)

			c, rec := NewTestContext(http.MethodPost, "/admin/github/publish", url.Values{"products": {tt.products}})
			require.NoError(t, h.HandlePublish(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Empty(t, gh.written(), "nothing may be written for a rejected catalog")
		})
	}
}

func newUploadContext(t *testing.T, files map[string][]byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, data := range files {
		part, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/github/images", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAdminUploadImages(t *testing.T) {
	gh, baseURL := newFakeGitHub(t)
	h := newTestAdminHandler(savedSettings("good-token"), baseURL)

	c, rec := newUploadContext(t, map[string][]byte{"bracket.jpg": []byte("jpeg")})
	require.NoError(t, h.HandleUploadImages(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Uploaded: data/images/products/bracket.jpg")
	assert.Equal(t, "Add product image data/images/products/bracket.jpg", gh.written()["data/images/products/bracket.jpg"])
}

func TestAdminUploadImagesWithoutFiles(t *testing.T) {
	h := newTestAdminHandler(savedSettings("good-token"), "http://unused")

	c, rec := newUploadContext(t, nil)
	require.NoError(t, h.HandleUploadImages(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no images selected")
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(github.ErrSettingsIncomplete))
	assert.Equal(t, http.StatusBadGateway, statusFor(&github.APIError{Status: 500}))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(assert.AnError))
}

func TestAdminClearSettings(t *testing.T) {
	creds := savedSettings("good-token")
	h := newTestAdminHandler(creds, "http://unused")

	c, rec := NewTestContext(http.MethodPost, "/admin/github/clear", url.Values{})
	require.NoError(t, h.HandleClearSettings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Settings cleared.")
	assert.Nil(t, creds.Settings)
	assert.Contains(t, rec.Body.String(), `name="owner" value="mevlut-celik"`)
}
