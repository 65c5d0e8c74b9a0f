package domain

import "github.com/light-bringer/storeadmin-service/internal/pkg/money"

// UnknownProduct names sales whose product no longer resolves.
const UnknownProduct = "Unknown"

// TopProductsLimit caps the top-product ranking.
const TopProductsLimit = 10

// ProductSales is the raw rollup of one product's order lines in a window.
// Name and Price are nil when the product cannot be found.
type ProductSales struct {
	ProductID     string
	Name          *string
	Price         *money.Money
	TotalQuantity int64
	OrderCount    int64
}

// TopProduct is a ranked product with its revenue at today's price.
type TopProduct struct {
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	TotalQuantity int64   `json:"totalQuantity"`
	OrderCount    int64   `json:"orderCount"`
	Revenue       float64 `json:"revenue"`
}

// Rank turns rollups into TopProducts. Revenue is quantity times the
// product's current price, not the price charged at sale time.
func Rank(sales []ProductSales) []TopProduct {
	out := make([]TopProduct, 0, len(sales))
	for _, s := range sales {
		name := UnknownProduct
		if s.Name != nil {
			name = *s.Name
		}
		price := money.Zero()
		if s.Price != nil {
			price = *s.Price
		}
		out = append(out, TopProduct{
			ProductID:     s.ProductID,
			ProductName:   name,
			TotalQuantity: s.TotalQuantity,
			OrderCount:    s.OrderCount,
			Revenue:       price.Times(s.TotalQuantity).Float64(),
		})
	}
	return out
}
