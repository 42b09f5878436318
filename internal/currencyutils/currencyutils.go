// Package currencyutils provides the price text handling used by the
// line-item extractor.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches a dollar amount with an optional decimal fraction.
// The captured numeral is kept verbatim so the original precision survives
// ("$1.5" is not normalized to "$1.50").
var amountPattern = regexp.MustCompile(`\$([0-9]+\.?[0-9]*)`)

// ExtractDollarAmount extracts a strictly positive dollar amount from price
// text. It returns the canonical "$"-prefixed amount string and true, or
// ("", false) when the text names no payable amount: free markers, literal
// $0.00, empty text, no currency match, or a non-positive value.
func ExtractDollarAmount(priceText string) (string, bool) {
	priceText = strings.TrimSpace(priceText)
	if priceText == "" || priceText == "$0.00" || strings.Contains(priceText, "Free") {
		return "", false
	}

	m := amountPattern.FindStringSubmatch(priceText)
	if m == nil {
		return "", false
	}

	value, err := decimal.NewFromString(m[1])
	if err != nil || !value.IsPositive() {
		return "", false
	}

	return "$" + m[1], true
}

// ParseAmount parses a canonical "$"-prefixed amount into a decimal.
func ParseAmount(amount string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimPrefix(amount, "$"))
}

var canonicalAmountPattern = regexp.MustCompile(`^\$[0-9]+(\.[0-9]+)?$`)

// IsCanonicalAmount reports whether s has the exact "$<digits>[.<digits>]"
// shape emitted by the extractor.
func IsCanonicalAmount(s string) bool {
	return canonicalAmountPattern.MatchString(s)
}
