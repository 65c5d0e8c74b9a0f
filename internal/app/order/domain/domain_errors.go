package domain

import (
	"errors"
	"fmt"
)

// Domain errors as sentinel values
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
	ErrProductNotFound = errors.New("order line references unknown product")
	ErrInvalidQuantity = errors.New("order line quantity must be positive")
	ErrInvalidLine     = errors.New("invalid order line")
	ErrInvalidEditLine = errors.New("invalid order line in edit")
)

// ProductNotFoundError names the product id a line could not resolve.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}

// Unwrap lets errors.Is match ErrProductNotFound.
func (e *ProductNotFoundError) Unwrap() error {
	return ErrProductNotFound
}

// LineError reports a malformed line. Placement and edit word it differently.
type LineError struct {
	kind error
}

func (e *LineError) Error() string {
	if e.kind == ErrInvalidEditLine {
		return "Invalid item payload"
	}
	return "Invalid item: productId and quantity are required"
}

// Unwrap lets errors.Is match ErrInvalidLine or ErrInvalidEditLine.
func (e *LineError) Unwrap() error {
	return e.kind
}
