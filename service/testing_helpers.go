package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/labstack/echo/v4"
)

// testCatalog is written to the data directory of every test service.
var testCatalog = catalog.Catalog{Products: []catalog.Product{
	{ID: "1", Code: "X1", Name: "Bracket", Category: "Parts", StockStatus: catalog.StockInStock,
		ImagePaths: []string{"images/a.jpg", "images/b.jpg"}},
	{ID: "2", Code: "V2", Name: "Vase", Category: "Decor", StockStatus: catalog.StockMadeToOrder},
}}

// setupTestService creates a service reading its catalog from a temporary data directory
func setupTestService(t *testing.T) *Service {
	t.Helper()

	dataDir := t.TempDir()
	data, err := json.Marshal(testCatalog)
	if err != nil {
		t.Fatalf("failed to marshal test catalog: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "products.json"), data, 0o644); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}

	// Create service with minimal config
	return New(&Config{
		Environment:    "test",
		Port:           "8080",
		BaseURL:        "http://localhost:8080",
		DataDir:        dataDir,
		HTTPTimeout:    5 * time.Second,
		WhatsAppNumber: "905551112233",
		SessionSecret:  "test-secret",
	})
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	// Disable Echo's default error handler for cleaner test output
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// Just set status code, don't write response
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(500)
		}
	}

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}
