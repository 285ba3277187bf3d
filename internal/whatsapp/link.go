package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Oklavaci/3dwebmarket/internal/catalog"
)

const baseURL = "https://wa.me/"

// Link builds a wa.me compose link. An empty number opens the number-less
// compose view.
func Link(number, text string) string {
	return baseURL + digits(number) + "?text=" + encodeText(text)
}

// encodeText escapes like encodeURIComponent: spaces become %20, not +.
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InquiryMessage is the default text of a product card's contact link.
func InquiryMessage(code, name string) string {
	return fmt.Sprintf("Hello, I would like to get information about the product %s %s.", code, name)
}

// OrderMessage is the default text of the detail page's order link.
func OrderMessage(code, name string) string {
	return fmt.Sprintf("Hello, I would like to order the product %s %s as a 3D print.", code, name)
}

// Composer builds product contact links for one business number.
type Composer struct {
	Number string
}

func NewComposer(number string) *Composer {
	return &Composer{Number: number}
}

// ProductInquiry links to a chat asking about p. The product's own template
// wins over the generated message.
func (c *Composer) ProductInquiry(p catalog.Product) string {
	text := p.WhatsAppTemplate
	if text == "" {
		text = InquiryMessage(p.Code, p.Name)
	}
	return Link(c.Number, text)
}

// ProductOrder links to a chat ordering p.
func (c *Composer) ProductOrder(p catalog.Product) string {
	text := p.WhatsAppTemplate
	if text == "" {
		text = OrderMessage(p.Code, p.Name)
	}
	return Link(c.Number, text)
}
