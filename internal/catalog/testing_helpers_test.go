package catalog

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

var testStatuses = []string{"in_stock", "made_to_order", "out_of_stock", "", "discontinued"}

// fakeProducts generates a deterministic collection of n products.
func fakeProducts(seed uint64, n int) []Product {
	f := gofakeit.New(int64(seed))
	categories := []string{"Home", "Garden", "Toys", "Office", ""}

	products := make([]Product, n)
	for i := range products {
		products[i] = Product{
			ID:          ID(fmt.Sprintf("%d", i+1)),
			Code:        f.Numerify("P-###"),
			Name:        f.ProductName(),
			Description: f.ProductDescription(),
			Category:    f.RandomString(categories),
			StockStatus: StockStatus(f.RandomString(testStatuses)),
			ImagePaths:  []string{"images/products/" + f.LetterN(8) + ".png"},
		}
	}
	return products
}

func noContact(Product) string { return "" }
