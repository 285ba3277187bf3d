package service

import (
	"net/http"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/Oklavaci/3dwebmarket/internal/handlers"
	"github.com/Oklavaci/3dwebmarket/internal/middleware"
	"github.com/Oklavaci/3dwebmarket/internal/session"
	"github.com/Oklavaci/3dwebmarket/internal/whatsapp"
	"github.com/labstack/echo/v4"
)

type Service struct {
	config         *Config
	loader         *catalog.Loader
	sessions       *session.Manager
	catalogHandler *handlers.CatalogHandler
	bringHandler   *handlers.BringHandler
	adminHandler   *handlers.AdminHandler
	themeHandler   *handlers.ThemeHandler
}

// NewSource picks the product source for a location: http(s) URLs are
// fetched, anything else is read from disk.
func NewSource(location string, cfg *Config) catalog.Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return catalog.NewHTTPSource(location, cfg.HTTPTimeout)
	}
	return catalog.FileSource{Path: location}
}

func New(config *Config) *Service {
	return NewWithLoader(config, catalog.NewLoader(NewSource(config.ProductsSource(), config)))
}

// NewWithLoader builds the service around an existing loader. The loader's
// memoized catalog lives as long as the service.
func NewWithLoader(config *Config, loader *catalog.Loader) *Service {
	sessions := session.NewManager(config.SessionSecret, config.IsProduction())
	pages := handlers.NewPages(config.BaseURL, sessions)
	composer := whatsapp.NewComposer(config.WhatsAppNumber)

	var ghOpts []github.Option
	if config.GitHub.APIURL != "" {
		ghOpts = append(ghOpts, github.WithBaseURL(config.GitHub.APIURL))
	}
	if config.HTTPTimeout > 0 {
		ghOpts = append(ghOpts, github.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout}))
	}

	return &Service{
		config:         config,
		loader:         loader,
		sessions:       sessions,
		catalogHandler: handlers.NewCatalogHandler(loader, composer, pages),
		bringHandler:   handlers.NewBringHandler(pages),
		adminHandler:   handlers.NewAdminHandler(sessions, loader, pages, ghOpts...),
		themeHandler:   handlers.NewThemeHandler(sessions),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files
	e.Static("/public", "public")
	e.Static("/data", s.config.DataDir)

	e.GET("/health", s.handleHealth)

	// Catalog pages
	e.GET("/", s.catalogHandler.HandleList)
	e.GET("/index.html", s.catalogHandler.HandleList)
	e.GET("/product", s.catalogHandler.HandleDetail)
	e.GET("/product.html", s.catalogHandler.HandleDetail)

	// Catalog API
	api := e.Group("/api")
	api.GET("/products", s.catalogHandler.HandleAPIList)
	api.GET("/products/:id", s.catalogHandler.HandleAPIDetail)

	// Bring your own model
	e.GET("/bring", s.bringHandler.HandleForm)
	e.POST("/bring", s.bringHandler.HandleSubmit)

	// Theme
	e.POST("/theme", s.themeHandler.HandleToggle)

	// Admin. The guard is attached per route so a wrong method answers 405.
	requireAdmin := middleware.RequireAdmin(s.config.AdminUser, s.config.AdminPassword)
	e.GET("/admin", s.adminHandler.HandleDashboard, requireAdmin)
	e.POST("/admin/github/settings", s.adminHandler.HandleSaveSettings, requireAdmin)
	e.POST("/admin/github/test", s.adminHandler.HandleTestConnection, requireAdmin)
	e.POST("/admin/github/clear", s.adminHandler.HandleClearSettings, requireAdmin)
	e.POST("/admin/github/publish", s.adminHandler.HandlePublish, requireAdmin)
	e.POST("/admin/github/images", s.adminHandler.HandleUploadImages, requireAdmin)
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
