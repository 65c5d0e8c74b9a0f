package domain

import (
	"time"

	"github.com/light-bringer/storeadmin-service/internal/pkg/money"
)

// Line is one requested {productId, quantity} pair.
type Line struct {
	ProductID string
	Quantity  int64
}

// ValidateLines checks a placement request. It rejects an empty list and
// any line missing a product or with a non-positive quantity.
func ValidateLines(lines []Line) error {
	return validateLines(lines, ErrInvalidLine)
}

// ValidateEditLines is ValidateLines for a full-replacement edit.
func ValidateEditLines(lines []Line) error {
	return validateLines(lines, ErrInvalidEditLine)
}

func validateLines(lines []Line, kind error) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return &LineError{kind: kind}
		}
	}
	return nil
}

// Item is a stored order line. UnitPrice is the product price when the line
// was written and does not follow later price changes.
type Item struct {
	ID        string
	ProductID string
	Quantity  int64
	UnitPrice money.Money
}

// Subtotal is UnitPrice times Quantity.
func (i Item) Subtotal() money.Money {
	return i.UnitPrice.Times(i.Quantity)
}

// Order is a sale and its lines. The stored total always equals the sum of
// the line subtotals.
type Order struct {
	id        string
	number    string
	items     []Item
	createdAt time.Time
}

// NewOrder starts an order with no lines.
func NewOrder(id, number string, createdAt time.Time) *Order {
	return &Order{id: id, number: number, createdAt: createdAt}
}

// ReconstructOrder rebuilds an order from storage.
func ReconstructOrder(id, number string, items []Item, createdAt time.Time) *Order {
	return &Order{id: id, number: number, items: items, createdAt: createdAt}
}

func (o *Order) ID() string           { return o.id }
func (o *Order) Number() string       { return o.number }
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Items returns the order lines.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// AddItem appends a line.
func (o *Order) AddItem(item Item) error {
	if item.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	o.items = append(o.items, item)
	return nil
}

// ClearItems drops every line, returning the ones removed.
func (o *Order) ClearItems() []Item {
	removed := o.items
	o.items = nil
	return removed
}

// Total sums the line subtotals.
func (o *Order) Total() money.Money {
	total := money.Zero()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}
