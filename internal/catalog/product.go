package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// StockStatus is the availability state of a product.
type StockStatus string

const (
	StockInStock     StockStatus = "in_stock"
	StockMadeToOrder StockStatus = "made_to_order"
	StockOutOfStock  StockStatus = "out_of_stock"
)

// Known reports whether s is one of the three recognized statuses.
func (s StockStatus) Known() bool {
	switch s {
	case StockInStock, StockMadeToOrder, StockOutOfStock:
		return true
	}
	return false
}

// ID identifies a product. The data file may store it as a JSON string or a
// JSON number; both decode to the same string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := decodeLenient(data)
	if err != nil {
		return fmt.Errorf("product id %s: %w", string(data), err)
	}
	*id = ID(s)
	return nil
}

func (id ID) String() string {
	return string(id)
}

// lenientString is a text field that also accepts numbers and booleans.
type lenientString string

func (l *lenientString) UnmarshalJSON(data []byte) error {
	s, err := decodeLenient(data)
	if err != nil {
		return err
	}
	*l = lenientString(s)
	return nil
}

// decodeLenient turns a JSON scalar into its display string. Numbers are
// canonical: 2, 2.0 and 2e0 all become "2".
func decodeLenient(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return "", fmt.Errorf("decode value: %w", err)
	}

	if n, ok := raw.(json.Number); ok {
		text := n.String()
		if !strings.ContainsAny(text, ".eE") {
			return text, nil
		}
		if f, err := n.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}
		return text, nil
	}

	return cast.ToStringE(raw)
}

// Product is one catalog entry as stored in data/products.json.
type Product struct {
	ID                 ID          `json:"id"`
	Code               string      `json:"code"`
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Category           string      `json:"category"`
	StockStatus        StockStatus `json:"stockStatus"`
	ImagePaths         []string    `json:"imagePaths,omitempty"`
	ImagePath          string      `json:"imagePath,omitempty"`
	FilamentType       string      `json:"filamentType,omitempty"`
	EstimatedPrintTime string      `json:"estimatedPrintTime,omitempty"`
	UsageNotes         string      `json:"usageNotes,omitempty"`
	ColorOptions       []string    `json:"colorOptions,omitempty"`
	WhatsAppTemplate   string      `json:"whatsAppTemplate,omitempty"`
}

// UnmarshalJSON decodes a record, accepting numbers where text is expected.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                 ID              `json:"id"`
		Code               lenientString   `json:"code"`
		Name               lenientString   `json:"name"`
		Description        lenientString   `json:"description"`
		Category           lenientString   `json:"category"`
		StockStatus        lenientString   `json:"stockStatus"`
		ImagePaths         []lenientString `json:"imagePaths"`
		ImagePath          lenientString   `json:"imagePath"`
		FilamentType       lenientString   `json:"filamentType"`
		EstimatedPrintTime lenientString   `json:"estimatedPrintTime"`
		UsageNotes         lenientString   `json:"usageNotes"`
		ColorOptions       []lenientString `json:"colorOptions"`
		WhatsAppTemplate   lenientString   `json:"whatsAppTemplate"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product{
		ID:                 raw.ID,
		Code:               string(raw.Code),
		Name:               string(raw.Name),
		Description:        string(raw.Description),
		Category:           string(raw.Category),
		StockStatus:        StockStatus(raw.StockStatus),
		ImagePaths:         toStrings(raw.ImagePaths),
		ImagePath:          string(raw.ImagePath),
		FilamentType:       string(raw.FilamentType),
		EstimatedPrintTime: string(raw.EstimatedPrintTime),
		UsageNotes:         string(raw.UsageNotes),
		ColorOptions:       toStrings(raw.ColorOptions),
		WhatsAppTemplate:   string(raw.WhatsAppTemplate),
	}
	return nil
}

func toStrings(in []lenientString) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

// Images returns the product's image paths in display order. Records written
// before imagePaths existed carry a single imagePath instead.
func (p Product) Images() []string {
	if p.ImagePaths != nil {
		return p.ImagePaths
	}
	if p.ImagePath != "" {
		return []string{p.ImagePath}
	}
	return nil
}

// Catalog is the document stored in the data file.
type Catalog struct {
	Products []Product `json:"products"`
}
