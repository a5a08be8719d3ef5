// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// coerceAmount turns user-entered text into a non-negative amount. The ledger
// is user-entered and partially-invalid data must still render, so malformed
// or negative numbers degrade to zero instead of failing.
func coerceAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// coerceDate parses a calendar date, degrading to the zero date on malformed
// input. Entries with a zero date still aggregate; they just sort first in
// the cumulative series.
func coerceDate(raw string) time.Time {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}
	}
	return parsed
}
