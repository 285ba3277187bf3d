package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/Oklavaci/3dwebmarket/views/admin"
	"github.com/Oklavaci/3dwebmarket/views/layout"
	"github.com/labstack/echo/v4"
)

const maxImageSize = 10 << 20

// AdminHandler serves the GitHub settings panel and the publish actions.
type AdminHandler struct {
	credentials github.CredentialStore
	loader      ProductLoader
	pages       *Pages
	clientOpts  []github.Option
}

func NewAdminHandler(credentials github.CredentialStore, loader ProductLoader, pages *Pages, clientOpts ...github.Option) *AdminHandler {
	return &AdminHandler{
		credentials: credentials,
		loader:      loader,
		pages:       pages,
		clientOpts:  clientOpts,
	}
}

func (h *AdminHandler) settings(c echo.Context) github.Settings {
	if s, ok := h.credentials.GetCredentials(c.Request()); ok {
		return s
	}
	return github.DefaultSettings()
}

func (h *AdminHandler) render(c echo.Context, status int, st *admin.Status) error {
	page := h.pages.Page(c, "admin-dashboard")
	page.Meta = page.Meta.WithTitle("Admin")

	data := admin.DashboardData{
		Settings:     h.settings(c),
		Status:       st,
		ProductCount: len(h.loader.Load(c.Request().Context())),
	}
	return Render(c, status, layout.Base(page, admin.Dashboard(data)))
}

func success(msg string) *admin.Status {
	return &admin.Status{Message: msg}
}

func failure(err error) *admin.Status {
	return &admin.Status{Message: "Error: " + err.Error(), Error: true}
}

// statusFor maps a failure to the response code of the re-rendered panel.
func statusFor(err error) int {
	var apiErr *github.APIError
	switch {
	case errors.Is(err, github.ErrSettingsIncomplete):
		return http.StatusBadRequest
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func (h *AdminHandler) HandleDashboard(c echo.Context) error {
	return h.render(c, http.StatusOK, nil)
}

// HandleSaveSettings stores the submitted settings. A blank token keeps the
// one already saved.
func (h *AdminHandler) HandleSaveSettings(c echo.Context) error {
	current, _ := h.credentials.GetCredentials(c.Request())

	next := github.Settings{
		Owner:  c.FormValue("owner"),
		Repo:   c.FormValue("repo"),
		Branch: c.FormValue("branch"),
		Token:  c.FormValue("token"),
	}.Normalize()
	if next.Token == "" {
		next.Token = current.Token
	}

	if err := h.credentials.SetCredentials(c.Response(), c.Request(), next); err != nil {
		slog.Error("failed to save github settings", "error", err)
		return h.render(c, http.StatusInternalServerError, failure(err))
	}

	slog.Info("github settings saved", "owner", next.Owner, "repo", next.Repo, "branch", next.Branch)
	return h.render(c, http.StatusOK, success("Settings saved (this browser only)."))
}

// HandleClearSettings forgets the settings saved in this browser.
func (h *AdminHandler) HandleClearSettings(c echo.Context) error {
	if err := h.credentials.ClearCredentials(c.Response(), c.Request()); err != nil {
		slog.Error("failed to clear github settings", "error", err)
		return h.render(c, http.StatusInternalServerError, failure(err))
	}
	return h.render(c, http.StatusOK, success("Settings cleared."))
}

// client builds a GitHub client from the saved settings.
func (h *AdminHandler) client(c echo.Context) (*github.Client, error) {
	s, ok := h.credentials.GetCredentials(c.Request())
	if !ok || !s.HasToken() {
		return nil, fmt.Errorf("save settings with a token first: %w", github.ErrSettingsIncomplete)
	}
	return github.NewClient(s, h.clientOpts...)
}

func (h *AdminHandler) HandleTestConnection(c echo.Context) error {
	client, err := h.client(c)
	if err != nil {
		return h.render(c, statusFor(err), failure(err))
	}

	repo, err := client.TestConnection(c.Request().Context())
	if err != nil {
		slog.Warn("github connection test failed", "error", err)
		return h.render(c, statusFor(err), failure(err))
	}

	return h.render(c, http.StatusOK, success("GitHub connection succeeded: "+repo.FullName))
}

// HandlePublish validates the submitted products.json and writes it to the
// repository. Nothing is written when validation fails.
func (h *AdminHandler) HandlePublish(c echo.Context) error {
	raw := strings.TrimSpace(c.FormValue("products"))
	if raw == "" {
		return h.render(c, http.StatusBadRequest, failure(errors.New("products.json is empty")))
	}

	products, err := catalog.Parse([]byte(raw))
	if err != nil {
		return h.render(c, http.StatusUnprocessableEntity, failure(err))
	}
	if errs := catalog.Validate(products); len(errs) > 0 {
		return h.render(c, http.StatusUnprocessableEntity, failure(errors.Join(errs...)))
	}

	client, err := h.client(c)
	if err != nil {
		return h.render(c, statusFor(err), failure(err))
	}

	content, err := client.PublishCatalog(c.Request().Context(), products)
	if err != nil {
		slog.Error("failed to publish catalog", "error", err)
		return h.render(c, statusFor(err), failure(err))
	}

	return h.render(c, http.StatusOK, success(fmt.Sprintf("Published %d products (revision %s).", len(products), shortSHA(content.SHA))))
}

// HandleUploadImages uploads the submitted images to the repository.
func (h *AdminHandler) HandleUploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return h.render(c, http.StatusBadRequest, failure(fmt.Errorf("read upload: %w", err)))
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		return h.render(c, http.StatusBadRequest, failure(errors.New("no images selected")))
	}

	files := make([]github.ImageFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readImage(fh)
		if err != nil {
			return h.render(c, http.StatusBadRequest, failure(err))
		}
		files = append(files, f)
	}

	client, err := h.client(c)
	if err != nil {
		return h.render(c, statusFor(err), failure(err))
	}

	paths, err := client.UploadImages(c.Request().Context(), files)
	if err != nil {
		slog.Error("failed to upload images", "error", err, "count", len(files))
		return h.render(c, statusFor(err), failure(err))
	}

	slog.Info("images uploaded", "count", len(paths))
	return h.render(c, http.StatusOK, success("Uploaded: "+strings.Join(paths, ", ")))
}

func readImage(fh *multipart.FileHeader) (github.ImageFile, error) {
	if fh.Filename == "" {
		return github.ImageFile{}, errors.New("image has no file name")
	}
	if fh.Size > maxImageSize {
		return github.ImageFile{}, fmt.Errorf("%s is larger than %d MB", fh.Filename, maxImageSize>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return github.ImageFile{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
	if err != nil {
		return github.ImageFile{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	return github.ImageFile{Name: fh.Filename, Data: data}, nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
