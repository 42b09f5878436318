// Package models provides the data structures shared by the extraction,
// aggregation and reporting stages.
package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Transaction is one paid line item extracted from the purchase history.
//
// Amount is kept as the verbatim "$"-prefixed string matched in the source
// markup. The original decimal precision is intentionally preserved ($1.5 is
// not reformatted to $1.50); use AmountDecimal for arithmetic.
type Transaction struct {
	Date         string `csv:"Date"`      // canonical YYYY-MM-DD
	ItemName     string `csv:"Item Name"` // never empty or whitespace-only
	Amount       string `csv:"Amount"`    // "$" + numeral, always > 0
	Subscription YesNo  `csv:"Subscription"`
	IconPath     string `csv:"-"` // optional artwork URL, report-only
}

// YesNo is a bool rendered as "Yes"/"No" in CSV output.
type YesNo bool

// MarshalCSV implements gocsv marshaling.
func (y YesNo) MarshalCSV() (string, error) {
	if y {
		return "Yes", nil
	}
	return "No", nil
}

// UnmarshalCSV implements gocsv unmarshaling. Anything but "Yes" is false.
func (y *YesNo) UnmarshalCSV(value string) error {
	*y = value == "Yes"
	return nil
}

// AmountDecimal returns the amount as a decimal for calculations. The field
// is produced by the extractor from a validated currency match, so a failed
// parse means a programming error; it yields zero rather than panicking.
func (t Transaction) AmountDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(trimDollar(t.Amount))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Year returns the YYYY portion of the canonical date.
func (t Transaction) Year() string {
	if len(t.Date) < 4 {
		return ""
	}
	return t.Date[:4]
}

// Month returns the YYYY-MM portion of the canonical date.
func (t Transaction) Month() string {
	if len(t.Date) < 7 {
		return ""
	}
	return t.Date[:7]
}

func trimDollar(s string) string {
	if len(s) > 0 && s[0] == '$' {
		return s[1:]
	}
	return s
}

// SortByDateDesc orders transactions newest first, the ledger order. The
// canonical date format makes lexicographic comparison equivalent to
// chronological comparison. The sort is stable so same-day items keep their
// document order.
func SortByDateDesc(transactions []Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})
}
