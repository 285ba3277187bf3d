package layout

import (
	"time"

	"github.com/Oklavaci/3dwebmarket/internal/session"
	"github.com/Oklavaci/3dwebmarket/views/helpers"
	"github.com/a-h/templ"
)

// Page is the per-request frame around every page body.
type Page struct {
	Meta  PageMeta
	Theme session.Theme
	// Name is written to body[data-page] for the stylesheet.
	Name string
	Now  time.Time
}

type navLink struct {
	href, label, page string
}

var navLinks = []navLink{
	{"/", "Products", "home"},
	{"/bring", "Bring Your Model", "bring"},
	{"/admin", "Admin", "admin-dashboard"},
}

// Base renders the document shell around body.
func Base(p Page, body templ.Component) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Printf(`<!DOCTYPE html><html lang="en" data-theme="%s"><head>`, string(p.Theme))
		h.Raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Printf(`<title>%s</title>`, p.Meta.Title)
		h.Printf(`<meta name="description" content="%s">`, p.Meta.Description)
		h.Printf(`<link rel="canonical" href="%s">`, helpers.SafeURL(p.Meta.CanonicalURL))
		h.Printf(`<meta property="og:type" content="%s">`, p.Meta.OGType)
		h.Printf(`<meta property="og:title" content="%s">`, p.Meta.OGTitle)
		h.Printf(`<meta property="og:description" content="%s">`, p.Meta.OGDescription)
		h.Printf(`<meta property="og:url" content="%s">`, helpers.SafeURL(p.Meta.OGURL))
		h.Printf(`<meta property="og:site_name" content="%s">`, p.Meta.OGSiteName)
		if p.Meta.OGImageURL != "" {
			h.Printf(`<meta property="og:image" content="%s">`, helpers.SafeURL(p.Meta.OGImageURL))
		}
		if schema := p.Meta.ProductSchemaJSON(); schema != "" {
			h.Raw(`<script type="application/ld+json">` + schema + `</script>`)
		}
		h.Raw(`<link rel="stylesheet" href="/public/css/styles.css"></head>`)

		h.Printf(`<body data-page="%s"><header class="site-header"><a class="brand" href="/">%s</a><nav>`, p.Name, p.Meta.OGSiteName)
		for _, l := range navLinks {
			h.Printf(`<a href="%s" class="%s">%s</a>`, l.href, helpers.ClassIf(l.page == p.Name, "active"), l.label)
		}
		h.Printf(`</nav><form method="post" action="/theme"><button type="submit" id="themeToggle" aria-label="Toggle theme">%s</button></form></header>`, p.Theme.Icon())

		h.Raw(`<main class="container">`)
		h.Component(body)
		h.Raw(`</main>`)

		h.Printf(`<footer class="site-footer">© <span id="year">%s</span> %s</footer></body></html>`, helpers.FormatYear(p.Now), p.Meta.OGSiteName)
	})
}
