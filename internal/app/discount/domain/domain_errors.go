package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrDiscountNotFound      = errors.New("discount not found")
	ErrInvalidDiscountType   = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountPeriod = errors.New("discount end date must not be before start date")
	ErrDiscountProductGone   = errors.New("discount product does not exist")
)
