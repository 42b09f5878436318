package models

import "github.com/shopspring/decimal"

// Summary holds the run-level totals printed to the console and shown in the
// report header.
type Summary struct {
	Total         int
	Subscriptions int
	OneTime       int
	TotalAmount   decimal.Decimal
}

// Summarize computes the totals over a transaction list.
func Summarize(transactions []Transaction) Summary {
	s := Summary{Total: len(transactions), TotalAmount: decimal.Zero}
	for _, t := range transactions {
		if bool(t.Subscription) {
			s.Subscriptions++
		} else {
			s.OneTime++
		}
		s.TotalAmount = s.TotalAmount.Add(t.AmountDecimal())
	}
	return s
}
