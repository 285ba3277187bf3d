package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCount(g *Gallery) int {
	n := 0
	for _, t := range g.Thumbnails() {
		if t.Active {
			n++
		}
	}
	return n
}

func TestGalleryFirstImageActiveInitially(t *testing.T) {
	g := NewGallery(Product{ImagePaths: []string{"images/a.png", "/images/b.png", "c.png"}})

	assert.Equal(t, 3, g.Len())
	assert.True(t, g.HasThumbnails())
	assert.Equal(t, 0, g.Active())
	assert.Equal(t, "data/images/a.png", g.Main())
	assert.Equal(t, 1, activeCount(g))
}

func TestGalleryActivateIsMutuallyExclusive(t *testing.T) {
	g := NewGallery(Product{ImagePaths: []string{"a.png", "b.png", "c.png", "d.png"}})

	for _, n := range []int{2, 0, 3, 1, 1} {
		require.NoError(t, g.Activate(n))

		thumbs := g.Thumbnails()
		assert.Equal(t, 1, activeCount(g), "after activating %d", n)
		assert.True(t, thumbs[n].Active)
		assert.Equal(t, thumbs[n].Path, g.Main())
	}
}

func TestGalleryActivateOutOfRange(t *testing.T) {
	g := NewGallery(Product{ImagePaths: []string{"a.png", "b.png"}})
	require.NoError(t, g.Activate(1))

	for _, n := range []int{-1, 2, 100} {
		err := g.Activate(n)
		assert.ErrorIs(t, err, ErrNoSuchImage)
		assert.Equal(t, 1, g.Active(), "state must be unchanged")
	}
}

func TestGallerySingleAndEmpty(t *testing.T) {
	single := NewGallery(Product{ImagePath: "legacy.png"})
	assert.False(t, single.HasThumbnails())
	assert.Equal(t, "data/legacy.png", single.Main())

	empty := NewGallery(Product{})
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "", empty.Main())
	assert.Empty(t, empty.Thumbnails())
	assert.ErrorIs(t, empty.Activate(0), ErrNoSuchImage)
}

func TestGalleryPathsIsACopy(t *testing.T) {
	g := NewGallery(Product{ImagePaths: []string{"a.png", "b.png"}})
	paths := g.Paths()
	paths[0] = "changed"
	assert.Equal(t, "data/a.png", g.Main())
}
