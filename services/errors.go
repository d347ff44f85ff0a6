package services

import "errors"

// Error taxonomy surfaced to the HTTP layer. Repositories translate driver
// errors into these at the boundary; handlers map them onto status codes.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrConflict   = errors.New("conflict")
)
