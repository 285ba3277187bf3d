package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeImagePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"already_rooted", "data/images/a.png", "data/images/a.png"},
		{"images_prefix", "images/a.png", "data/images/a.png"},
		{"bare_file", "a.png", "data/a.png"},
		{"leading_slash", "/images/a.png", "data/images/a.png"},
		{"leading_backslashes", `\\data/a.png`, "data/a.png"},
		{"mixed_leading_separators", `/\/images/b.jpg`, "data/images/b.jpg"},
		{"only_separators", "///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeImagePath(tt.raw))
		})
	}
}

func TestNormalizeImagePathIsIdempotent(t *testing.T) {
	inputs := []string{"", "a.png", "/a.png", "images/x/y.png", "data/z.png", `\images\w.png`, "products/1.webp"}
	for _, in := range inputs {
		once := NormalizeImagePath(in)
		assert.Equal(t, once, NormalizeImagePath(once), "normalizing %q twice", in)
	}

	for _, p := range fakeProducts(7, 50) {
		once := NormalizeImagePath(p.ImagePaths[0])
		assert.Equal(t, once, NormalizeImagePath(once))
	}
}

func TestPrimaryImage(t *testing.T) {
	assert.Equal(t, "data/images/1.png", PrimaryImage(Product{ImagePaths: []string{"images/1.png", "images/2.png"}}))
	assert.Equal(t, "data/legacy.png", PrimaryImage(Product{ImagePath: "/legacy.png"}))
	assert.Equal(t, "", PrimaryImage(Product{}))
	assert.Equal(t, "", PrimaryImage(Product{ImagePaths: []string{}, ImagePath: "ignored.png"}))
}
