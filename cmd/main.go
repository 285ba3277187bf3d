package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/Oklavaci/3dwebmarket/internal/middleware"
	"github.com/Oklavaci/3dwebmarket/service"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

func main() {
	// slog is configured in slog.go via init()

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "3dwebmarket",
		Short:         "3D print product catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the catalog site",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "check [products.json]",
			Short: "Validate a products file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := loadProductsFile(cmd.Context(), args)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "products file is valid")
				return nil
			},
		},
		&cobra.Command{
			Use:   "publish [products.json]",
			Short: "Validate a products file and publish it to GitHub",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runPublish(cmd, args)
			},
		},
	)
	return root
}

func runServe(ctx context.Context) error {
	config, err := service.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.RequestLogger())
	e.Use(middleware.SecurityHeaders())

	svc := service.New(config)
	svc.RegisterRoutes(e)

	addr := fmt.Sprintf(":%s", config.Port)
	slog.Info("3D print catalog starting",
		"url", config.BaseURL,
		"port", config.Port,
		"environment", config.Environment,
		"products", config.ProductsSource(),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// loadProductsFile reads, parses and validates the file named in args, or the
// configured source when args is empty.
func loadProductsFile(ctx context.Context, args []string) ([]catalog.Product, error) {
	config, err := service.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	location := config.ProductsSource()
	if len(args) == 1 {
		location = args[0]
	}

	data, err := service.NewSource(location, config).Fetch(ctx)
	if err != nil {
		return nil, err
	}

	products, err := catalog.Parse(data)
	if err != nil {
		return nil, err
	}

	if errs := catalog.Validate(products); len(errs) > 0 {
		for _, e := range errs {
			slog.Error("invalid product", "error", e)
		}
		return nil, fmt.Errorf("%s: %d problems found", location, len(errs))
	}

	slog.Info("products file checked", "source", location, "products", len(products))
	return products, nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	products, err := loadProductsFile(ctx, args)
	if err != nil {
		return err
	}

	config, err := service.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	client, err := github.NewClient(config.GitHub.Settings,
		github.WithBaseURL(config.GitHub.APIURL),
		github.WithHTTPClient(&http.Client{Timeout: config.HTTPTimeout}),
	)
	if err != nil {
		return fmt.Errorf("github client: %w", err)
	}

	content, err := client.PublishCatalog(ctx, products)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %d products to %s (%s)\n", len(products), content.Path, content.SHA)
	return nil
}
