package shop

import (
	"slices"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
	"github.com/Oklavaci/3dwebmarket/views/helpers"
	"github.com/a-h/templ"
)

// Card renders one product card.
func Card(card catalog.CardView) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Raw(`<article class="product-card">`)
		if card.ImageSrc != "" {
			h.Printf(`<div class="product-card-image"><img src="%s" alt="%s" loading="lazy"></div>`,
				helpers.SafeURL(card.ImageSrc), card.ImageAlt)
		}
		h.Printf(`<header class="product-card-header"><div><div class="product-code">%s</div><h3 class="product-title">%s</h3></div><span class="chip">%s</span></header>`,
			card.Code, card.Name, card.Category)
		h.Printf(`<p class="product-desc">%s</p>`, card.Description)
		h.Printf(`<div class="product-meta"><span class="stock-pill %s">%s</span></div>`, card.StockClass, card.StockLabel)
		h.Printf(`<footer class="product-footer"><a href="%s" class="btn ghost small">View details</a>`, helpers.SafeURL(card.DetailHref))
		h.Printf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="btn secondary small">WhatsApp</a></footer>`, helpers.SafeURL(card.ContactHref))
		h.Raw(`</article>`)
	})
}

// List renders the filter form, the empty state and the visible cards.
func List(view catalog.ListView) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Raw(`<section class="catalog"><form class="filters" method="get" action="/" role="search">`)
		h.Printf(`<input type="search" id="searchInput" name="q" value="%s" placeholder="Search by name or code">`, view.Filter.Query)

		h.Raw(`<select id="categoryFilter" name="category"><option value="">All categories</option>`)
		for _, c := range withRequested(view.Categories, view.Filter.Category) {
			h.Printf(`<option value="%s"%s>%s</option>`, c, selected(c == view.Filter.Category), c)
		}
		h.Raw(`</select>`)

		h.Raw(`<select id="stockFilter" name="stock"><option value="">All statuses</option>`)
		stock := view.Stock
		if s := view.Filter.Stock; s != "" && !s.Known() {
			stock = append(slices.Clone(stock), catalog.StockOption{Value: s, Label: catalog.StockLabel(s)})
		}
		for _, o := range stock {
			h.Printf(`<option value="%s"%s>%s</option>`, string(o.Value), selected(o.Value == view.Filter.Stock), o.Label)
		}
		h.Raw(`</select><button type="submit" class="btn small">Filter</button></form>`)

		emptyText := "No products match your filters."
		if view.Filter.IsZero() {
			emptyText = "No products to show yet."
		}
		h.Printf(`<div id="product-empty-state" class="empty-state %s">%s</div>`,
			helpers.ClassIf(!view.Empty(), "hidden"), emptyText)

		h.Raw(`<div id="product-list" class="product-grid">`)
		for _, card := range view.Cards {
			h.Component(Card(card))
		}
		h.Raw(`</div></section>`)
	})
}

// withRequested appends the requested value when the collection has no such
// option, so the form shows the filter that emptied the list.
func withRequested(options []string, requested string) []string {
	if requested == "" || slices.Contains(options, requested) {
		return options
	}
	return append(slices.Clone(options), requested)
}

func selected(cond bool) helpers.Trusted {
	if cond {
		return " selected"
	}
	return ""
}
