package layout

import (
	"encoding/json"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
)

const (
	defaultSiteName    = "3D Print Workshop"
	defaultDescription = "3D printed products made to order, and printing for the models you bring."
)

// PageMeta contains all metadata for a page (SEO, Open Graph, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	CanonicalURL string

	// Open Graph
	OGType        string // "website" or "product"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Internal state
	SiteURL string
	Product *catalog.DetailView
}

// NewPageMeta creates a PageMeta with site-wide defaults
// Call this first, then chain .WithTitle() or .FromProduct()
func NewPageMeta(siteURL, requestURI string) PageMeta {
	canonicalURL := BuildAbsoluteURL(siteURL, requestURI)

	return PageMeta{
		Title:        defaultSiteName,
		Description:  defaultDescription,
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       defaultSiteName,
		OGDescription: defaultDescription,
		OGURL:         canonicalURL,
		OGSiteName:    defaultSiteName,

		SiteURL: siteURL,
	}
}

// WithTitle sets a page title, keeping the site name as suffix
func (pm PageMeta) WithTitle(title string) PageMeta {
	if title == "" {
		return pm
	}
	pm.Title = title + " - " + pm.OGSiteName
	pm.OGTitle = title
	return pm
}

// FromProduct updates PageMeta with product-specific information
func (pm PageMeta) FromProduct(product catalog.DetailView) PageMeta {
	pm = pm.WithTitle(strings.TrimSpace(product.Code + " " + product.Name))

	if product.Description != "" {
		pm.Description = product.Description
		pm.OGDescription = product.Description
	}

	productURL := BuildAbsoluteURL(pm.SiteURL, "/"+catalog.DetailHref(catalog.ID(product.ID)))
	pm.CanonicalURL = productURL
	pm.OGURL = productURL
	pm.OGType = "product"

	if product.Gallery != nil && product.Gallery.Len() > 0 {
		pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, product.Gallery.Paths()[0])
	}

	pm.Product = &product
	return pm
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return siteURL + path
}

var schemaAvailability = map[string]string{
	string(catalog.StockInStock):     "https://schema.org/InStock",
	string(catalog.StockMadeToOrder): "https://schema.org/MadeToOrder",
	string(catalog.StockOutOfStock):  "https://schema.org/OutOfStock",
}

// ProductSchemaJSON returns the Schema.org Product JSON-LD, or "" off
// product pages
func (pm PageMeta) ProductSchemaJSON() string {
	if pm.Product == nil {
		return ""
	}
	product := pm.Product

	schema := map[string]any{
		"@context":    "https://schema.org/",
		"@type":       "Product",
		"name":        product.Name,
		"sku":         product.Code,
		"description": pm.Description,
		"category":    product.Category,
		"url":         pm.OGURL,
	}
	if availability, ok := schemaAvailability[product.StockClass]; ok {
		schema["offers"] = map[string]any{
			"@type":        "Offer",
			"url":          pm.OGURL,
			"availability": availability,
		}
	}
	if pm.OGImageURL != "" {
		schema["image"] = pm.OGImageURL
	}

	// json.Marshal escapes <, > and &, so the result is safe inside <script>.
	data, err := json.Marshal(schema)
	if err != nil {
		return ""
	}
	return string(data)
}
