package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/internal/whatsapp"
	"github.com/Oklavaci/3dwebmarket/views/layout"
	"github.com/Oklavaci/3dwebmarket/views/shop"
	"github.com/labstack/echo/v4"
)

// ProductLoader provides the product collection.
type ProductLoader interface {
	Load(ctx context.Context) []catalog.Product
}

type CatalogHandler struct {
	loader   ProductLoader
	composer *whatsapp.Composer
	pages    *Pages
}

func NewCatalogHandler(loader ProductLoader, composer *whatsapp.Composer, pages *Pages) *CatalogHandler {
	return &CatalogHandler{
		loader:   loader,
		composer: composer,
		pages:    pages,
	}
}

func filterFromQuery(c echo.Context) catalog.Filter {
	var f catalog.Filter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &f); err != nil {
		slog.Debug("ignoring malformed filter query", "error", err)
		return catalog.Filter{}
	}
	return f
}

// HandleList renders the product list for the filters in the query string.
func (h *CatalogHandler) HandleList(c echo.Context) error {
	products := h.loader.Load(c.Request().Context())
	view := catalog.BuildList(products, filterFromQuery(c), h.composer.ProductInquiry)

	page := h.pages.Page(c, "home")
	return Render(c, http.StatusOK, layout.Base(page, shop.List(view)))
}

// HandleDetail renders one product, or the not-found state when the id is
// missing or matches nothing.
func (h *CatalogHandler) HandleDetail(c echo.Context) error {
	page := h.pages.Page(c, "product-detail")

	id := strings.TrimSpace(c.QueryParam("id"))
	if id == "" {
		return Render(c, http.StatusNotFound, layout.Base(page, shop.NotFound()))
	}

	product, ok := catalog.FindByID(h.loader.Load(c.Request().Context()), id)
	if !ok {
		return Render(c, http.StatusNotFound, layout.Base(page, shop.NotFound()))
	}

	image, _ := strconv.Atoi(c.QueryParam("image"))
	view := catalog.BuildDetail(product, h.composer.ProductOrder, image)
	page.Meta = page.Meta.FromProduct(view)

	return Render(c, http.StatusOK, layout.Base(page, shop.Detail(view)))
}

// HandleAPIList returns the filtered list as JSON.
func (h *CatalogHandler) HandleAPIList(c echo.Context) error {
	products := h.loader.Load(c.Request().Context())
	view := catalog.BuildList(products, filterFromQuery(c), h.composer.ProductInquiry)
	return c.JSON(http.StatusOK, view)
}

// HandleAPIDetail returns one product as JSON.
func (h *CatalogHandler) HandleAPIDetail(c echo.Context) error {
	product, ok := catalog.FindByID(h.loader.Load(c.Request().Context()), c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}

	image, _ := strconv.Atoi(c.QueryParam("image"))
	return c.JSON(http.StatusOK, catalog.BuildDetail(product, h.composer.ProductOrder, image))
}
