package catalog

import "fmt"

// Validate reports problems that would make a collection unsafe to publish:
// blank or duplicate ids and misspelled stock statuses. A missing status is
// allowed and renders as unknown.
func Validate(products []Product) []error {
	var errs []error
	seen := make(map[ID]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("product %d (%q): missing id", i, p.Name))
			continue
		}
		if first, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("product %d (%q): duplicate id %q, first used by product %d", i, p.Name, p.ID, first))
		} else {
			seen[p.ID] = i
		}
		if p.StockStatus != "" && !p.StockStatus.Known() {
			errs = append(errs, fmt.Errorf("product %d (%q): unknown stock status %q", i, p.Name, p.StockStatus))
		}
	}
	return errs
}
