package utils

import (
	"strings"

	"github.com/google/uuid"
)

const orderNumberPrefix = "ORD-"

// NewOrderNumber returns a short human-readable token like ORD-1A2B3C4D.
// Uniqueness is best effort here; the caller relies on the unique index on
// orders.order_number and retries on collision.
func NewOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderNumberPrefix + strings.ToUpper(id[:8])
}

// NewResetCode returns a one-time password-reset code.
func NewResetCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
