package catalog

import (
	"errors"
	"fmt"
)

var ErrNoSuchImage = errors.New("no such image")

// Thumbnail is one entry of the gallery strip.
type Thumbnail struct {
	Index  int
	Path   string
	Active bool
}

// Gallery tracks which of a product's images is shown as the main image.
// Exactly one image is active whenever the gallery is non-empty.
type Gallery struct {
	images []string
	active int
}

// NewGallery builds a gallery over the normalized images of p with the first
// image active.
func NewGallery(p Product) *Gallery {
	raw := p.Images()
	images := make([]string, 0, len(raw))
	for _, path := range raw {
		if n := NormalizeImagePath(path); n != "" {
			images = append(images, n)
		}
	}
	return &Gallery{images: images}
}

// Activate makes image i the main image. An out of range index leaves the
// gallery unchanged.
func (g *Gallery) Activate(i int) error {
	if i < 0 || i >= len(g.images) {
		return fmt.Errorf("activate image %d of %d: %w", i, len(g.images), ErrNoSuchImage)
	}
	g.active = i
	return nil
}

// Main returns the path of the active image, or "" for an empty gallery.
func (g *Gallery) Main() string {
	if len(g.images) == 0 {
		return ""
	}
	return g.images[g.active]
}

// Paths returns a copy of the normalized image paths.
func (g *Gallery) Paths() []string {
	out := make([]string, len(g.images))
	copy(out, g.images)
	return out
}

func (g *Gallery) Active() int {
	return g.active
}

func (g *Gallery) Len() int {
	return len(g.images)
}

// HasThumbnails reports whether a thumbnail strip should be shown.
func (g *Gallery) HasThumbnails() bool {
	return len(g.images) > 1
}

func (g *Gallery) Thumbnails() []Thumbnail {
	thumbs := make([]Thumbnail, len(g.images))
	for i, path := range g.images {
		thumbs[i] = Thumbnail{Index: i, Path: path, Active: i == g.active}
	}
	return thumbs
}
