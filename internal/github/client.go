package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 60 * time.Second

	// ProductsPath is where the site reads its catalog from.
	ProductsPath = "data/products.json"
	// ImagesDir holds uploaded product images.
	ImagesDir = "data/images/products"

	maxParallelUploads = 4
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateImage = errors.New("duplicate image name")
)

// APIError is a non-success response from the GitHub API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub request failed: %d %s", e.Status, strings.TrimSpace(e.Body))
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client talks to the contents API of one repository.
type Client struct {
	baseURL    string
	settings   Settings
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient validates settings and returns a client for their repository.
func NewClient(settings Settings, opts ...Option) (*Client, error) {
	settings = settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:  defaultBaseURL,
		settings: settings,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Settings() Settings {
	return c.settings
}

// Content is the metadata of a stored file.
type Content struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Size int64  `json:"size"`
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

type putResponse struct {
	Content Content `json:"content"`
}

// Repository is the subset of repository metadata the admin panel shows.
type Repository struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
}

func (c *Client) doRequest(ctx context.Context, method, p string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+p, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.settings.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(text)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) repoPath() string {
	return "/repos/" + url.PathEscape(c.settings.Owner) + "/" + url.PathEscape(c.settings.Repo)
}

func (c *Client) contentsPath(filePath string) string {
	segments := strings.Split(strings.Trim(filePath, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return c.repoPath() + "/contents/" + strings.Join(segments, "/")
}

// TestConnection checks that the token can read the repository.
func (c *Client) TestConnection(ctx context.Context) (*Repository, error) {
	var repo Repository
	if err := c.doRequest(ctx, http.MethodGet, c.repoPath(), nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// GetContent returns the current revision of a file on the configured branch.
// A missing file is reported as ErrNotFound.
func (c *Client) GetContent(ctx context.Context, filePath string) (*Content, error) {
	p := c.contentsPath(filePath) + "?" + url.Values{"ref": {c.settings.Branch}}.Encode()

	var content Content
	if err := c.doRequest(ctx, http.MethodGet, p, nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// PutContent creates or overwrites a file. The current sha is sent when the
// file exists so a concurrent edit makes the write fail instead of being lost.
func (c *Client) PutContent(ctx context.Context, filePath string, data []byte, message string) (*Content, error) {
	body := putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(data),
		Branch:  c.settings.Branch,
	}

	existing, err := c.GetContent(ctx, filePath)
	switch {
	case err == nil:
		body.SHA = existing.SHA
	case errors.Is(err, ErrNotFound):
		slog.Debug("file does not exist yet, creating", "path", filePath)
	default:
		return nil, fmt.Errorf("read current revision of %s: %w", filePath, err)
	}

	var resp putResponse
	if err := c.doRequest(ctx, http.MethodPut, c.contentsPath(filePath), body, &resp); err != nil {
		return nil, fmt.Errorf("write %s: %w", filePath, err)
	}
	if resp.Content.Path == "" {
		return nil, fmt.Errorf("write %s: response has no content path", filePath)
	}
	return &resp.Content, nil
}

// PublishCatalog writes products to the site's data file.
func (c *Client) PublishCatalog(ctx context.Context, products []catalog.Product) (*Content, error) {
	data, err := json.MarshalIndent(catalog.Catalog{Products: products}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	data = append(data, '\n')

	content, err := c.PutContent(ctx, ProductsPath, data, fmt.Sprintf("Update products.json (%d products)", len(products)))
	if err != nil {
		return nil, err
	}

	slog.Info("catalog published",
		"repo", c.settings.Owner+"/"+c.settings.Repo,
		"branch", c.settings.Branch,
		"products", len(products),
		"sha", content.SHA,
	)
	return content, nil
}

// ImageFile is an image waiting to be uploaded.
type ImageFile struct {
	Name string
	Data []byte
}

// ImagePath is the repository path an uploaded image named name is stored at.
func ImagePath(name string) string {
	return path.Join(ImagesDir, path.Base(strings.ReplaceAll(name, `\`, "/")))
}

// UploadImage stores one image and returns its repository path.
func (c *Client) UploadImage(ctx context.Context, name string, data []byte) (string, error) {
	p := ImagePath(name)
	content, err := c.PutContent(ctx, p, data, "Add product image "+p)
	if err != nil {
		return "", err
	}
	return content.Path, nil
}

// UploadImages stores files concurrently and returns their paths in input
// order. The first failure cancels the remaining uploads. Two files that map
// to the same repository path are rejected before anything is written.
func (c *Client) UploadImages(ctx context.Context, files []ImageFile) ([]string, error) {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		p := ImagePath(f.Name)
		if prev, ok := seen[p]; ok {
			return nil, fmt.Errorf("%s and %s both map to %s: %w", prev, f.Name, p, ErrDuplicateImage)
		}
		seen[p] = f.Name
	}

	paths := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			p, err := c.UploadImage(gctx, f.Name, f.Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
