package service

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string

	// DataDir is served at /data; product image paths resolve against it.
	DataDir string
	// DataSource is the products document, a file path or an http(s) URL.
	// Empty means DataDir/products.json.
	DataSource  string
	HTTPTimeout time.Duration

	WhatsAppNumber string
	SessionSecret  string

	// AdminPassword enables basic auth on /admin when set.
	AdminUser     string
	AdminPassword string

	GitHub struct {
		APIURL string
		github.Settings
	}
}

func LoadConfig() (*Config, error) {
	// .env is a development convenience; production sets variables directly.
	if os.Getenv("ENVIRONMENT") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load .env", "error", err)
		}
	}

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		DataSource:  getEnv("DATA_SOURCE", ""),
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil || timeout <= 0 {
		slog.Warn("invalid HTTP_TIMEOUT, using default", "value", os.Getenv("HTTP_TIMEOUT"))
		timeout = 30 * time.Second
	}
	config.HTTPTimeout = timeout

	// WhatsApp
	config.WhatsAppNumber = getEnv("WHATSAPP_NUMBER", "")

	// Sessions
	config.SessionSecret = getEnv("SESSION_SECRET", "development-secret")

	// Admin
	config.AdminUser = getEnv("ADMIN_USER", "admin")
	config.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	// GitHub (used by the publish command; the admin panel uses per-session settings)
	defaults := github.DefaultSettings()
	config.GitHub.APIURL = getEnv("GITHUB_API_URL", "https://api.github.com")
	config.GitHub.Owner = getEnv("GITHUB_OWNER", defaults.Owner)
	config.GitHub.Repo = getEnv("GITHUB_REPO", defaults.Repo)
	config.GitHub.Branch = getEnv("GITHUB_BRANCH", defaults.Branch)
	config.GitHub.Token = getEnv("GITHUB_TOKEN", "")

	return config, nil
}

// IsProduction reports whether cookies must be marked secure.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ProductsSource returns the configured data source location.
func (c *Config) ProductsSource() string {
	if c.DataSource != "" {
		return c.DataSource
	}
	return strings.TrimRight(c.DataDir, "/") + "/products.json"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
