package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrUntrackedProduct  = errors.New("product not loaded into stock book")
)

// InsufficientStockError carries the numbers behind an ErrInsufficientStock.
type InsufficientStockError struct {
	ProductName string
	Available   int64
	Requested   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product: %s. Available: %d, Requested: %d",
		e.ProductName, e.Available, e.Requested)
}

// Unwrap lets errors.Is match ErrInsufficientStock.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
