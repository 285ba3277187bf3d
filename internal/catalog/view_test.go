package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCard(t *testing.T) {
	p := Product{
		ID:          "7",
		Code:        "X1",
		Name:        "Bracket",
		Description: "Holds things",
		Category:    "Home",
		StockStatus: StockMadeToOrder,
		ImagePaths:  []string{"/images/x1.png", "images/x1-b.png"},
	}

	card := BuildCard(p, func(p Product) string { return "contact:" + p.Code })

	assert.Equal(t, "7", card.ID)
	assert.Equal(t, "data/images/x1.png", card.ImageSrc)
	assert.Equal(t, "Bracket", card.ImageAlt)
	assert.Equal(t, "Home", card.Category)
	assert.Equal(t, "Made to order", card.StockLabel)
	assert.Equal(t, "made_to_order", card.StockClass)
	assert.Equal(t, "product?id=7", card.DetailHref)
	assert.Equal(t, "contact:X1", card.ContactHref)
}

func TestBuildCardFallbacks(t *testing.T) {
	card := BuildCard(Product{ID: "a b&c"}, noContact)

	assert.Equal(t, "", card.ImageSrc)
	assert.Equal(t, "3D printed product", card.ImageAlt)
	assert.Equal(t, "General", card.Category)
	assert.Equal(t, "Status unknown", card.StockLabel)
	assert.Equal(t, "product?id=a+b%26c", card.DetailHref)
}

func TestBuildList(t *testing.T) {
	products := sampleProducts()

	view := BuildList(products, Filter{Category: "Home"}, noContact)
	assert.False(t, view.Empty())
	assert.Equal(t, []string{"Garden", "Home", "Office"}, view.Categories)
	assert.Equal(t, 5, view.Total)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "1", view.Cards[0].ID)
	assert.Equal(t, "5", view.Cards[1].ID)
}

func TestBuildListEmptyState(t *testing.T) {
	view := BuildList(sampleProducts(), Filter{Category: "Not a category"}, noContact)
	assert.True(t, view.Empty())
	assert.Empty(t, view.Cards)
	// Options still come from the whole collection.
	assert.Len(t, view.Categories, 3)

	empty := BuildList(nil, Filter{}, noContact)
	assert.True(t, empty.Empty())
	assert.NotNil(t, empty.Categories)
}

func TestBuildDetailFallbacks(t *testing.T) {
	view := BuildDetail(Product{ID: "1", Code: "X1", Name: "Bracket"}, noContact, 0)

	assert.Equal(t, "—", view.FilamentType)
	assert.Equal(t, "—", view.EstimatedPrintTime)
	assert.Equal(t, "—", view.Colors)
	assert.Equal(t, "Not specified.", view.UsageNotes)
	assert.Equal(t, "Status unknown", view.StockLabel)
	assert.Empty(t, view.Images)
}

func TestBuildDetail(t *testing.T) {
	p := Product{
		ID:                 "1",
		FilamentType:       "PLA",
		EstimatedPrintTime: "3h",
		ColorOptions:       []string{"Black", "", "White"},
		UsageNotes:         "Indoor use",
		StockStatus:        StockInStock,
		ImagePaths:         []string{"a.png", "b.png", "c.png"},
	}

	view := BuildDetail(p, noContact, 2)
	assert.Equal(t, "PLA", view.FilamentType)
	assert.Equal(t, "3h", view.EstimatedPrintTime)
	assert.Equal(t, "Black, White", view.Colors)
	assert.Equal(t, "Indoor use", view.UsageNotes)
	assert.Equal(t, []string{"data/a.png", "data/b.png", "data/c.png"}, view.Images)
	assert.Equal(t, "data/c.png", view.Gallery.Main())

	// An invalid image index keeps the first image.
	fallback := BuildDetail(p, noContact, 9)
	assert.Equal(t, "data/a.png", fallback.Gallery.Main())
}
