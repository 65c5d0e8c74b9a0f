package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// Type is the way a discount reduces a price.
type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

// ParseType validates a discount type string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypePercentage, TypeFixed:
		return Type(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

// Terms are the editable fields of a discount.
type Terms struct {
	Type      Type
	Value     decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool
}

// Discount reduces a price during a window. A nil product id means the
// discount is global.
type Discount struct {
	id        string
	productID *string
	terms     Terms
	createdAt time.Time
	updatedAt time.Time
}

// NewDiscount validates terms and creates a discount.
func NewDiscount(id string, productID *string, terms Terms, now time.Time) (*Discount, error) {
	if err := terms.validate(); err != nil {
		return nil, err
	}
	return &Discount{id: id, productID: productID, terms: terms, createdAt: now, updatedAt: now}, nil
}

// ReconstructDiscount rebuilds a Discount from storage.
func ReconstructDiscount(id string, productID *string, terms Terms, createdAt, updatedAt time.Time) *Discount {
	return &Discount{id: id, productID: productID, terms: terms, createdAt: createdAt, updatedAt: updatedAt}
}

func (d *Discount) ID() string           { return d.id }
func (d *Discount) ProductID() *string   { return d.productID }
func (d *Discount) Terms() Terms         { return d.terms }
func (d *Discount) CreatedAt() time.Time { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time { return d.updatedAt }

// Revise replaces the discount terms. The product scope never changes.
func (d *Discount) Revise(terms Terms, now time.Time) error {
	if err := terms.validate(); err != nil {
		return err
	}
	d.terms = terms
	d.updatedAt = now
	return nil
}

// IsActiveAt reports whether the discount applies at t. Both ends of the
// window are inclusive.
func (d *Discount) IsActiveAt(t time.Time) bool {
	return d.terms.IsActive && !t.Before(d.terms.StartDate) && !t.After(d.terms.EndDate)
}

// Apply returns price after the discount, floored at zero.
func (d *Discount) Apply(price money.Money) money.Money {
	var reduced money.Money
	switch d.terms.Type {
	case TypePercentage:
		reduced = price.Sub(price.Percent(d.terms.Value))
	default:
		reduced = price.Sub(money.FromDecimal(d.terms.Value))
	}
	return reduced.Max(money.Zero())
}

// EffectivePrice applies the first discount in the list that is active at
// now. Callers pass discounts newest first.
func EffectivePrice(price money.Money, discounts []*Discount, now time.Time) money.Money {
	for _, d := range discounts {
		if d.IsActiveAt(now) {
			return d.Apply(price)
		}
	}
	return price
}

func (t Terms) validate() error {
	if _, err := ParseType(string(t.Type)); err != nil {
		return err
	}
	if t.EndDate.Before(t.StartDate) {
		return ErrInvalidDiscountPeriod
	}
	return nil
}
