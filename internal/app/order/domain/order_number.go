package domain

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"
)

const suffixLen = 9

var orderNumberPattern = regexp.MustCompile(`^ORD-\d+-[A-Z0-9]{9}$`)

// NumberGenerator produces human-readable order numbers.
type NumberGenerator interface {
	Next(now time.Time) string
}

// RandomNumbers formats ORD-<unix millis>-<9 random uppercase characters>.
// Numbers are not checked for collisions; the unique index rejects a clash.
type RandomNumbers struct{}

// Next returns a fresh order number for now.
func (RandomNumbers) Next(now time.Time) string {
	return FormatNumber(now, rand.Text()[:suffixLen])
}

// FormatNumber builds an order number from its parts.
func FormatNumber(now time.Time, suffix string) string {
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// IsOrderNumber reports whether s has the order number shape.
func IsOrderNumber(s string) bool {
	return orderNumberPattern.MatchString(s)
}

// SaleReason is the ledger reason for stock sold by a new order.
func SaleReason(number string, qty int64) string {
	return fmt.Sprintf("Order %s - Sold %d units", number, qty)
}

// RestoreReason is the ledger reason for stock returned when an order is edited.
func RestoreReason(number string) string {
	return fmt.Sprintf("Order %s edit - restore stock", number)
}

// AdjustReason is the ledger reason for stock taken by an edited order.
func AdjustReason(number string) string {
	return fmt.Sprintf("Order %s edit - adjust stock", number)
}
