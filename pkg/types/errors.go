package types

import "errors"

var (
	// Lease errors
	ErrTableLocked   = errors.New("table is in use by another session")
	ErrLeaseNotFound = errors.New("lease not found")

	// Store errors, logged and never returned past the lease manager
	ErrStorageUnavailable = errors.New("lease storage unavailable")
	ErrCorruptRecord      = errors.New("corrupt lease record")

	// Page errors
	ErrPageNotFound     = errors.New("page not found")
	ErrSessionNotActive = errors.New("session is not active")
	ErrSessionEnded     = errors.New("session has ended")

	// Cart errors
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrItemNotFound    = errors.New("menu item not found")

	// Order errors
	ErrOrderCreationFailed = errors.New("order creation failed")
	ErrOrderInProgress     = errors.New("an order is already being placed")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")

	// Restaurant errors
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrForbidden          = errors.New("restaurant does not belong to the current user")
	ErrInvalidID          = errors.New("invalid id")

	// Identity errors
	ErrUnauthenticated = errors.New("unauthenticated")
)
