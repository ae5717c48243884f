// Package money formats currency amounts for display.
//
// Engines carry raw float64 amounts end to end; rounding to two decimal
// places happens here, at presentation time, and nowhere else. This keeps
// subtotal/tax/total derivation free of compounding rounding error.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the locale used by Format.
var DefaultLocale = language.AmericanEnglish

// Format renders a USD amount for display, rounded to cents, with
// locale-appropriate digit grouping ("$1,250.50").
func Format(amount float64) string {
	return FormatIn(DefaultLocale, amount)
}

// FormatIn renders a USD amount using the given locale's number conventions.
func FormatIn(tag language.Tag, amount float64) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("$%.2f", amount)
}
