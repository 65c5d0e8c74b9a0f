package m_discount

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data is one row of the discounts table.
type Data struct {
	DiscountID   string             `spanner:"discount_id"`
	ProductID    spanner.NullString `spanner:"product_id"`
	DiscountType string             `spanner:"discount_type"`
	Value        big.Rat            `spanner:"value"`
	StartDate    time.Time          `spanner:"start_date"`
	EndDate      time.Time          `spanner:"end_date"`
	IsActive     bool               `spanner:"is_active"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}
