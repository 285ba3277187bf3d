package catalog

import (
	"sort"
	"strings"
)

// Filter holds the three independent list filters. Zero values match
// everything.
type Filter struct {
	Query    string      `query:"q" json:"q"`
	Category string      `query:"category" json:"category"`
	Stock    StockStatus `query:"stock" json:"stock"`
}

// IsZero reports whether no filter is set.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.Category == "" && f.Stock == ""
}

// Matches reports whether p passes every filter.
func (f Filter) Matches(p Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		name := strings.ToLower(p.Name)
		code := strings.ToLower(p.Code)
		if !strings.Contains(name, q) && !strings.Contains(code, q) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Stock != "" && p.StockStatus != f.Stock {
		return false
	}
	return true
}

// Apply returns the products matching f in their original order. The input
// slice is not modified.
func Apply(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories, sorted ascending.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// FindByID returns the product whose id equals id. Ids are compared in their
// string form, so a stored numeric 2 matches a requested "2".
func FindByID(products []Product, id string) (Product, bool) {
	if id == "" {
		return Product{}, false
	}
	for _, p := range products {
		if p.ID.String() == id {
			return p, true
		}
	}
	return Product{}, false
}
