//go:build integration

package e2e

import (
	"github.com/light-bringer/storeadmin-service/internal/app/order/domain"
	productdomain "github.com/light-bringer/storeadmin-service/internal/app/product/domain"
	"github.com/light-bringer/storeadmin-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// ProductBuilder helps create products for tests with a fluent interface.
type ProductBuilder struct {
	attrs productdomain.Attributes
}

// NewProductBuilder creates a builder with default values.
func NewProductBuilder() *ProductBuilder {
	category := "beverages"
	return &ProductBuilder{attrs: productdomain.Attributes{
		Name:     "Test Product",
		Price:    money.FromInt(10),
		Stock:    10,
		Category: &category,
		Images:   []string{},
	}}
}

// WithName sets the product name.
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.attrs.Name = name
	return b
}

// WithPrice sets the price from a decimal string.
func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	m, err := money.Parse(price)
	if err != nil {
		panic(err)
	}
	b.attrs.Price = m
	return b
}

// WithStock sets the starting stock.
func (b *ProductBuilder) WithStock(stock int64) *ProductBuilder {
	b.attrs.Stock = stock
	return b
}

// WithBarcode sets the barcode.
func (b *ProductBuilder) WithBarcode(barcode string) *ProductBuilder {
	b.attrs.Barcode = &barcode
	return b
}

// Build returns the create request.
func (b *ProductBuilder) Build() *create_product.Request {
	return &create_product.Request{Attributes: b.attrs}
}

// line is shorthand for an order line.
func line(productID string, qty int64) domain.Line {
	return domain.Line{ProductID: productID, Quantity: qty}
}
