package catalog

const (
	unknownStockLabel = "Status unknown"
	unknownStockClass = "unknown"
)

var stockLabels = map[StockStatus]string{
	StockInStock:     "In stock",
	StockMadeToOrder: "Made to order",
	StockOutOfStock:  "Out of stock",
}

// StockLabel returns the badge text for a stock status. Unrecognized and
// missing statuses get an explicit unknown label.
func StockLabel(s StockStatus) string {
	if label, ok := stockLabels[s]; ok {
		return label
	}
	return unknownStockLabel
}

// StockClass returns the CSS modifier for the stock badge.
func StockClass(s StockStatus) string {
	if s.Known() {
		return string(s)
	}
	return unknownStockClass
}

// StockOption is one entry of the stock filter.
type StockOption struct {
	Value StockStatus
	Label string
}

// StockOptions lists the selectable stock statuses in display order.
func StockOptions() []StockOption {
	return []StockOption{
		{Value: StockInStock, Label: StockLabel(StockInStock)},
		{Value: StockMadeToOrder, Label: StockLabel(StockMadeToOrder)},
		{Value: StockOutOfStock, Label: StockLabel(StockOutOfStock)},
	}
}
