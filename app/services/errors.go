package services

import "errors"

var (
	// ErrNotFound covers any missing product, category, cart line or order.
	ErrNotFound = errors.New("record not found")

	// ErrCartEmpty rejects a checkout against a cart with no lines.
	ErrCartEmpty = errors.New("cart is empty")

	// ErrOrderNotCancellable rejects cancellation of an order whose status
	// already left pending/processing.
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)
