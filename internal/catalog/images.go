package catalog

import "strings"

const dataPrefix = "data/"

// NormalizeImagePath roots an image path under data/ regardless of how the
// data file spelled it. Leading slashes and backslashes are dropped first.
func NormalizeImagePath(raw string) string {
	p := strings.TrimLeft(raw, `/\`)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, dataPrefix) {
		return p
	}
	// images/... and bare file names both live under data/.
	return dataPrefix + p
}

// PrimaryImage returns the normalized first image of p, or "" when it has none.
func PrimaryImage(p Product) string {
	images := p.Images()
	if len(images) == 0 {
		return ""
	}
	return NormalizeImagePath(images[0])
}
