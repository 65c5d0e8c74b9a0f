package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
	ErrNegativeStock    = errors.New("product stock cannot be negative")
	ErrBarcodeTaken     = errors.New("barcode already assigned to another product")
	ErrProductHasOrders = errors.New("product is referenced by existing orders")
	ErrBarcodeRequired  = errors.New("barcode is required")
	ErrNothingToUpdate  = errors.New("no fields to update")
)
