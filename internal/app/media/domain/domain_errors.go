package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrNoFile   = errors.New("no file provided")
	ErrNotImage = errors.New("only image uploads are allowed")
)
