package cart

import "errors"

var (
	ErrMissingProduct = errors.New("line item requires a product id")
	ErrInvalidPrice   = errors.New("unit price cannot be negative")
	ErrLineNotFound   = errors.New("line item not found")
)
