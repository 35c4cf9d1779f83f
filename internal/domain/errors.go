package domain

import "errors"

// ErrInsufficientStock is wrapped by checkout failures where the requested
// quantity exceeds the current stock of a product.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrProductNotFound is wrapped by checkout failures referencing an unknown product.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity is wrapped by checkout failures for non-positive quantities.
var ErrInvalidQuantity = errors.New("quantity must be positive")
