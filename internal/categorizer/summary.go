package categorizer

import "github.com/shopspring/decimal"

// CategorySummary is one category's purchase count and total, consumed by
// the report's category table.
type CategorySummary struct {
	Name  string
	Count int
	Total decimal.Decimal
}
