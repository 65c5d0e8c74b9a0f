package fakes

import (
	"fmt"
	"time"

	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// FixedTime is the default instant fixtures are created at.
var FixedTime = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

// SeedProduct stores a product with the given decimal price and stock.
func (s *Store) SeedProduct(id, name, price string, stock int64) *productdomain.Product {
	amount, err := money.Parse(price)
	if err != nil {
		panic(fmt.Sprintf("fakes: bad price %q: %v", price, err))
	}
	p := productdomain.ReconstructProduct(id, productdomain.Attributes{
		Name:  name,
		Price: amount,
		Stock: stock,
	}, FixedTime, FixedTime)
	s.Products.Seed(p)
	return p
}
