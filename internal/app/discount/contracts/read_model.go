package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/storeadmin-service/internal/app/discount/domain"
)

// ProductRef is the product summary embedded in a discount listing.
type ProductRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DiscountDTO is the JSON shape of a discount.
type DiscountDTO struct {
	ID        string      `json:"id"`
	ProductID *string     `json:"productId"`
	Type      string      `json:"discountType"`
	Value     float64     `json:"value"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Product   *ProductRef `json:"product,omitempty"`
}

// ToDTO converts a discount for output.
func ToDTO(d *domain.Discount) *DiscountDTO {
	terms := d.Terms()
	value, _ := terms.Value.Float64()
	return &DiscountDTO{
		ID:        d.ID(),
		ProductID: d.ProductID(),
		Type:      string(terms.Type),
		Value:     value,
		StartDate: terms.StartDate,
		EndDate:   terms.EndDate,
		IsActive:  terms.IsActive,
		CreatedAt: d.CreatedAt(),
		UpdatedAt: d.UpdatedAt(),
	}
}

// ReadModel defines discount queries. All lists are newest first.
type ReadModel interface {
	// ListDiscounts returns every discount with its product summary.
	ListDiscounts(ctx context.Context) ([]*DiscountDTO, error)

	// ListActive returns the discounts active at now, global ones included.
	ListActive(ctx context.Context, now time.Time) ([]*DiscountDTO, error)

	// GetDiscount returns one discount with its product summary.
	GetDiscount(ctx context.Context, discountID string) (*DiscountDTO, error)

	// ForProducts groups the discounts of each product id. With a non-nil
	// activeAt only discounts active at that instant are returned.
	ForProducts(ctx context.Context, productIDs []string, activeAt *time.Time) (map[string][]*domain.Discount, error)
}
