package shop

import (
	"net/url"
	"strconv"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/views/helpers"
	"github.com/a-h/templ"
)

// ThumbnailHref links to the detail page with image i shown as main image.
func ThumbnailHref(id string, i int) string {
	return "product?" + url.Values{"id": {id}, "image": {strconv.Itoa(i)}}.Encode()
}

// Detail renders the full product record with its gallery.
func Detail(view catalog.DetailView) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Raw(`<div id="product-detail"><section class="card">`)
		h.Printf(`<header><div class="product-code">%s</div><h1>%s</h1></header>`, view.Code, view.Name)

		if g := view.Gallery; g != nil && g.Len() > 0 {
			h.Printf(`<div class="product-detail-image"><img id="productMainImage" src="%s" alt="%s"></div>`,
				helpers.SafeURL(g.Main()), view.Name)
			if g.HasThumbnails() {
				h.Raw(`<div class="product-thumbnails">`)
				for _, t := range g.Thumbnails() {
					h.Printf(`<a class="thumb %s" href="%s" data-index="%d"%s><img src="%s" alt="%s" loading="lazy"></a>`,
						helpers.ClassIf(t.Active, "active"),
						helpers.SafeURL(ThumbnailHref(view.ID, t.Index)),
						t.Index,
						ariaCurrent(t.Active),
						helpers.SafeURL(t.Path),
						view.Name)
				}
				h.Raw(`</div>`)
			}
		}

		h.Printf(`<p class="muted">%s</p>`, view.Description)
		h.Printf(`<div class="product-meta product-meta--spaced"><span class="stock-pill %s">%s</span></div>`, view.StockClass, view.StockLabel)

		h.Raw(`<dl class="small detail-grid">`)
		h.Printf(`<div><dt>Filament type</dt><dd>%s</dd></div>`, view.FilamentType)
		h.Printf(`<div><dt>Estimated print time</dt><dd>%s</dd></div>`, view.EstimatedPrintTime)
		h.Printf(`<div><dt>Color options</dt><dd>%s</dd></div>`, view.Colors)
		h.Raw(`</dl>`)

		h.Printf(`<section class="detail-section"><h2 class="detail-heading">Usage notes</h2><p class="small">%s</p></section>`, view.UsageNotes)

		h.Printf(`<footer class="detail-footer"><a class="btn primary small" target="_blank" rel="noopener noreferrer" href="%s">Order on WhatsApp</a>`,
			helpers.SafeURL(view.ContactHref))
		h.Raw(`<a href="/" class="btn ghost small">Back to other products</a></footer>`)
		h.Raw(`</section></div>`)
	})
}

// NotFound is the empty state for a missing or unknown product id.
func NotFound() templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Raw(`<div id="product-detail-empty" class="empty-state"><p>Product not found.</p><a href="/" class="btn ghost small">Back to products</a></div>`)
	})
}

func ariaCurrent(active bool) helpers.Trusted {
	if active {
		return ` aria-current="true"`
	}
	return ""
}
