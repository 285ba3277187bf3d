package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultFetchTimeout = 30 * time.Second

// Source reads the raw product document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads the data file from disk on every Fetch.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return data, nil
}

// HTTPSource fetches the data file over HTTP, bypassing intermediate caches.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns an HTTPSource using a client with the given timeout.
// A zero timeout uses the default.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("products.json load failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// Decode parses a product document. Records that cannot be decoded are left
// out and reported in skipped; err is set only when the document itself is
// malformed. A document without a products array yields an empty catalog.
func Decode(data []byte) (products []Product, skipped []error, err error) {
	var doc struct {
		Products []json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse products: %w", err)
	}

	products = make([]Product, 0, len(doc.Products))
	for i, raw := range doc.Products {
		var p Product
		if err := json.Unmarshal(raw, &p); err != nil {
			skipped = append(skipped, fmt.Errorf("product %d: %w", i, err))
			continue
		}
		products = append(products, p)
	}
	return products, skipped, nil
}

// Parse decodes a product document and fails if any record is unreadable.
// It is used before publishing, where dropping a record would lose data.
func Parse(data []byte) ([]Product, error) {
	products, skipped, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if len(skipped) > 0 {
		return nil, fmt.Errorf("parse products: %w", errors.Join(skipped...))
	}
	return products, nil
}

// Loader fetches the product collection once and serves the memoized result
// for the rest of its lifetime. There is no invalidation; construct a new
// Loader to pick up changes.
type Loader struct {
	source Source

	mu       sync.RWMutex
	loaded   bool
	products []Product

	group singleflight.Group
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load returns the product collection. Fetch and parse failures are logged
// and produce an empty collection, which is memoized like a successful load.
// Callers must not modify the returned slice.
func (l *Loader) Load(ctx context.Context) []Product {
	l.mu.RLock()
	if l.loaded {
		products := l.products
		l.mu.RUnlock()
		return products
	}
	l.mu.RUnlock()

	// Detached so one abandoned request cannot memoize an empty catalog.
	fetchCtx := context.WithoutCancel(ctx)
	v, _, _ := l.group.Do("products", func() (any, error) {
		l.mu.RLock()
		if l.loaded {
			products := l.products
			l.mu.RUnlock()
			return products, nil
		}
		l.mu.RUnlock()

		products := l.fetch(fetchCtx)

		l.mu.Lock()
		l.products = products
		l.loaded = true
		l.mu.Unlock()

		return products, nil
	})
	return v.([]Product)
}

func (l *Loader) fetch(ctx context.Context) []Product {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		slog.Error("failed to load products", "error", err)
		return []Product{}
	}

	products, skipped, err := Decode(data)
	if err != nil {
		slog.Error("failed to parse products", "error", err)
		return []Product{}
	}
	for _, e := range skipped {
		slog.Warn("skipping unreadable product", "error", e)
	}

	slog.Info("products loaded", "count", len(products))
	return products
}
