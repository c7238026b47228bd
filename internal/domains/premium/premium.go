// Package premium owns the time-window logic of the listing boost: a boost
// elevates a listing's sort priority until its expiry passes. Activity is
// always recomputed against a clock, never read from a stored flag.
package premium

import (
	"fmt"
	"time"
)

// DefaultBoostDays is the boost window sold by the premium product.
const DefaultBoostDays = 7

// Product describes a purchasable boost, mirroring store-product metadata.
type Product struct {
	ID             string `json:"id"`
	Price          string `json:"price"`
	LocalizedPrice string `json:"localized_price"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

// BoostProduct is the single boost offering.
var BoostProduct = Product{
	ID:             "premium_post_boost",
	Price:          "2.99",
	LocalizedPrice: "$2.99",
	Title:          "Premium Post Boost",
	Description:    "Move your listing to the top for 7 days",
}

// PurchaseResult reports the outcome of a boost purchase.
type PurchaseResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Grant computes the expiry for a boost of the given length starting now.
// Re-granting restarts the window from the new grant time; windows never
// stack.
func Grant(now time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultBoostDays
	}
	return now.Add(time.Duration(days) * 24 * time.Hour)
}

// IsActive reports whether the boost is active right now.
func IsActive(expiry *time.Time) bool {
	return IsActiveAt(expiry, time.Now())
}

// IsActiveAt reports whether the boost is active at the given instant.
// An absent expiry is inactive; expiry equal to now is already expired.
func IsActiveAt(expiry *time.Time, now time.Time) bool {
	if expiry == nil {
		return false
	}
	return now.Before(*expiry)
}

// RemainingLabel renders the time left on a boost, floored to whole hours:
// "2d 5h remaining", "5h remaining", or "Expired".
func RemainingLabel(expiry *time.Time, now time.Time) string {
	if !IsActiveAt(expiry, now) {
		return "Expired"
	}
	remaining := expiry.Sub(now)
	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	if days > 0 {
		return fmt.Sprintf("%dd %dh remaining", days, hours)
	}
	return fmt.Sprintf("%dh remaining", hours)
}
