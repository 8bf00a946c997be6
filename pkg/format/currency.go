// Package format renders PKR amounts for display: grouped currency strings
// plus the crore/lakh magnitudes used in the Pakistani market.
package format

import (
	"github.com/cyberweblabs/propdata/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with the PKR prefix and thousands
// separators (e.g., "PKR 49,560,000").
func Currency(amount float64) string {
	return printer.Sprintf("PKR %.0f", amount)
}

// CroreLakh returns the crore- and lakh-scaled magnitudes of an amount.
// These are division-based unit conversions, not rounding operations.
func CroreLakh(amount float64) (crore float64, lakh float64) {
	return amount / constants.CroreDivisor, amount / constants.LakhDivisor
}
