package catalog

import (
	"net/url"
	"strings"
)

const (
	placeholder        = "—"
	notSpecified       = "Not specified."
	defaultCategory    = "General"
	defaultImageAlt    = "3D printed product"
	detailPath         = "product"
	colorListSeparator = ", "
)

// ContactFunc builds the contact link for a product.
type ContactFunc func(p Product) string

// CardView is the display projection of one product in the list.
type CardView struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageSrc    string `json:"imageSrc,omitempty"`
	ImageAlt    string `json:"imageAlt"`
	StockLabel  string `json:"stockLabel"`
	StockClass  string `json:"stockClass"`
	DetailHref  string `json:"detailHref"`
	ContactHref string `json:"contactHref"`
}

// BuildCard projects p into a CardView.
func BuildCard(p Product, contact ContactFunc) CardView {
	alt := p.Name
	if alt == "" {
		alt = defaultImageAlt
	}
	category := p.Category
	if category == "" {
		category = defaultCategory
	}

	return CardView{
		ID:          p.ID.String(),
		Code:        p.Code,
		Name:        p.Name,
		Category:    category,
		Description: p.Description,
		ImageSrc:    PrimaryImage(p),
		ImageAlt:    alt,
		StockLabel:  StockLabel(p.StockStatus),
		StockClass:  StockClass(p.StockStatus),
		DetailHref:  DetailHref(p.ID),
		ContactHref: contact(p),
	}
}

// DetailHref links to the detail page of the product with the given id.
func DetailHref(id ID) string {
	return detailPath + "?" + url.Values{"id": {id.String()}}.Encode()
}

// ListView is everything the list page shows for one filter state.
type ListView struct {
	Filter     Filter        `json:"filter"`
	Categories []string      `json:"categories"`
	Stock      []StockOption `json:"-"`
	Cards      []CardView    `json:"products"`
	Total      int           `json:"total"`
}

// Empty reports whether the empty-state indicator should be shown.
func (v ListView) Empty() bool {
	return len(v.Cards) == 0
}

// BuildList filters products and projects the visible ones into cards.
// Category options always come from the full collection.
func BuildList(products []Product, f Filter, contact ContactFunc) ListView {
	visible := Apply(products, f)
	cards := make([]CardView, len(visible))
	for i, p := range visible {
		cards[i] = BuildCard(p, contact)
	}
	categories := Categories(products)
	if categories == nil {
		categories = []string{}
	}
	return ListView{
		Filter:     f,
		Categories: categories,
		Stock:      StockOptions(),
		Cards:      cards,
		Total:      len(products),
	}
}

// DetailView is the full record of one product with display fallbacks
// applied.
type DetailView struct {
	ID                 string   `json:"id"`
	Code               string   `json:"code"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	StockLabel         string   `json:"stockLabel"`
	StockClass         string   `json:"stockClass"`
	FilamentType       string   `json:"filamentType"`
	EstimatedPrintTime string   `json:"estimatedPrintTime"`
	Colors             string   `json:"colors"`
	UsageNotes         string   `json:"usageNotes"`
	Images             []string `json:"images"`
	ContactHref        string   `json:"contactHref"`
	Gallery            *Gallery `json:"-"`
}

// BuildDetail projects p into a DetailView with image activeImage shown as
// the main image. An invalid activeImage falls back to the first image.
func BuildDetail(p Product, contact ContactFunc, activeImage int) DetailView {
	gallery := NewGallery(p)
	if activeImage != 0 {
		_ = gallery.Activate(activeImage)
	}

	return DetailView{
		ID:                 p.ID.String(),
		Code:               p.Code,
		Name:               p.Name,
		Description:        p.Description,
		Category:           orDefault(p.Category, defaultCategory),
		StockLabel:         StockLabel(p.StockStatus),
		StockClass:         StockClass(p.StockStatus),
		FilamentType:       orDefault(p.FilamentType, placeholder),
		EstimatedPrintTime: orDefault(p.EstimatedPrintTime, placeholder),
		Colors:             orDefault(strings.Join(nonEmpty(p.ColorOptions), colorListSeparator), placeholder),
		UsageNotes:         orDefault(p.UsageNotes, notSpecified),
		Images:             gallery.Paths(),
		ContactHref:        contact(p),
		Gallery:            gallery,
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
