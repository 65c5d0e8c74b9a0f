package contracts

import (
	"context"
	"time"

	discountcontracts "github.com/light-bringer/storeadmin-service/internal/app/discount/contracts"
)

// ProductDTO is the JSON shape of a product with its embedded discounts.
type ProductDTO struct {
	ID             string                           `json:"id"`
	Name           string                           `json:"name"`
	Description    *string                          `json:"description"`
	Price          float64                          `json:"price"`
	EffectivePrice float64                          `json:"effectivePrice"`
	Stock          int64                            `json:"stock"`
	Category       *string                          `json:"category"`
	Barcode        *string                          `json:"barcode"`
	Images         []string                         `json:"images"`
	CreatedAt      time.Time                        `json:"createdAt"`
	UpdatedAt      time.Time                        `json:"updatedAt"`
	Discounts      []*discountcontracts.DiscountDTO `json:"discounts"`
}

// ReadModel defines product queries. Lists and barcode lookups embed only
// discounts active now; the detail view embeds all of the product's discounts.
type ReadModel interface {
	GetProduct(ctx context.Context, productID string) (*ProductDTO, error)
	ListProducts(ctx context.Context) ([]*ProductDTO, error)
	FindByBarcode(ctx context.Context, barcode string) (*ProductDTO, error)
}
