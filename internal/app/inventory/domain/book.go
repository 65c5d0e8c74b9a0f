package domain

import "fmt"

// DefaultAdjustReason is recorded when a manual adjustment gives no reason.
const DefaultAdjustReason = "Manual update"

// Movement is one ledger entry: a single stock change of one product.
type Movement struct {
	ProductID     string
	PreviousStock int64
	NewStock      int64
	Reason        string
}

// Level is the stock a product ends a transaction with.
type Level struct {
	ProductID string
	Stock     int64
}

type entry struct {
	name  string
	stock int64
}

// Book is the working stock of the products touched by one transaction.
// Spanner does not let a transaction read its own buffered writes, so every
// change is applied here first and the book supplies the values to persist:
// one movement per change and one final level per product.
type Book struct {
	entries   map[string]*entry
	order     []string
	movements []Movement
}

// NewBook creates an empty stock book.
func NewBook() *Book {
	return &Book{entries: make(map[string]*entry)}
}

// Track loads a product's stored stock. Products already tracked keep their
// working level, so loading the same product twice is harmless.
func (b *Book) Track(productID, name string, stock int64) {
	if _, ok := b.entries[productID]; ok {
		return
	}
	b.entries[productID] = &entry{name: name, stock: stock}
	b.order = append(b.order, productID)
}

// Tracked reports whether the product has been loaded.
func (b *Book) Tracked(productID string) bool {
	_, ok := b.entries[productID]
	return ok
}

// Level returns the working stock of a tracked product.
func (b *Book) Level(productID string) (int64, bool) {
	e, ok := b.entries[productID]
	if !ok {
		return 0, false
	}
	return e.stock, true
}

// Withdraw removes qty units. It fails with an *InsufficientStockError when
// the working level is below qty, leaving the book unchanged.
func (b *Book) Withdraw(productID string, qty int64, reason string) error {
	e, err := b.lookup(productID)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if e.stock < qty {
		return &InsufficientStockError{ProductName: e.name, Available: e.stock, Requested: qty}
	}
	b.record(productID, e, e.stock-qty, reason)
	return nil
}

// Restore puts qty units back.
func (b *Book) Restore(productID string, qty int64, reason string) error {
	e, err := b.lookup(productID)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	b.record(productID, e, e.stock+qty, reason)
	return nil
}

// Set overwrites the level with an absolute value.
func (b *Book) Set(productID string, stock int64, reason string) error {
	e, err := b.lookup(productID)
	if err != nil {
		return err
	}
	if stock < 0 {
		return ErrNegativeStock
	}
	if reason == "" {
		reason = DefaultAdjustReason
	}
	b.record(productID, e, stock, reason)
	return nil
}

// Movements returns the changes in the order they were applied.
func (b *Book) Movements() []Movement {
	out := make([]Movement, len(b.movements))
	copy(out, b.movements)
	return out
}

// Levels returns the final level of every product that moved, in the order
// the products were first tracked.
func (b *Book) Levels() []Level {
	moved := make(map[string]bool, len(b.movements))
	for _, m := range b.movements {
		moved[m.ProductID] = true
	}
	out := make([]Level, 0, len(moved))
	for _, id := range b.order {
		if moved[id] {
			out = append(out, Level{ProductID: id, Stock: b.entries[id].stock})
		}
	}
	return out
}

func (b *Book) lookup(productID string) (*entry, error) {
	e, ok := b.entries[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUntrackedProduct, productID)
	}
	return e, nil
}

func (b *Book) record(productID string, e *entry, next int64, reason string) {
	b.movements = append(b.movements, Movement{
		ProductID:     productID,
		PreviousStock: e.stock,
		NewStock:      next,
		Reason:        reason,
	})
	e.stock = next
}
