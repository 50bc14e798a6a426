package services

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrCartNotFound  = errors.New("cart not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrNoItems             = errors.New("at least one item is required")
	ErrTableNumberRequired = errors.New("table number is required")
	ErrCartEmpty           = errors.New("cart is empty")

	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyCancelled  = errors.New("order already cancelled")

	// ErrStatusConflict means the order's status changed between read
	// and update; the caller should retry with fresh state.
	ErrStatusConflict = errors.New("order status changed concurrently")

	// ErrCartContention means repeated versioned merges all lost the
	// race against concurrent writers.
	ErrCartContention = errors.New("cart is being modified concurrently")
)
