// Package aggregator derives the summary views consumed by the report: item
// totals grouped on a normalized name, yearly totals and monthly activity.
// It never mutates the transaction list it is given.
package aggregator

import (
	"sort"

	"github.com/shopspring/decimal"

	"fjacquet/purchases-csv/internal/models"
)

// ItemGroup is one normalized-name bucket in the repeated-items view.
type ItemGroup struct {
	Name  string
	Count int
	Total decimal.Decimal
}

// YearGroup is one year's total.
type YearGroup struct {
	Year  string
	Total decimal.Decimal
}

// MonthGroup is one month's purchase count and total.
type MonthGroup struct {
	Month string
	Count int
	Total decimal.Decimal
}

// Aggregator computes the summary views using a set of family rules for
// name normalization.
type Aggregator struct {
	families *FamilyRules
}

// New creates an Aggregator with the built-in family rules.
func New() *Aggregator {
	return NewWithRules(nil)
}

// NewWithRules creates an Aggregator with explicit family rules. Nil means
// the defaults.
func NewWithRules(rules *FamilyRules) *Aggregator {
	if rules == nil {
		rules = DefaultFamilyRules()
	}
	return &Aggregator{families: rules}
}

// NormalizeName returns the grouping key used for an item name.
func (a *Aggregator) NormalizeName(name string) string {
	return a.families.Normalize(name)
}

// RepeatedItems groups transactions by normalized name and keeps the groups
// bought at least twice, sorted by total amount descending. Groups with
// exactly equal totals keep the order their names were first encountered in;
// the source leaves this tie order unspecified.
func (a *Aggregator) RepeatedItems(transactions []models.Transaction) []ItemGroup {
	totals := make(map[string]*ItemGroup)
	var order []string

	for _, t := range transactions {
		key := a.NormalizeName(t.ItemName)
		group, seen := totals[key]
		if !seen {
			group = &ItemGroup{Name: key, Total: decimal.Zero}
			totals[key] = group
			order = append(order, key)
		}
		group.Count++
		group.Total = group.Total.Add(t.AmountDecimal())
	}

	var repeated []ItemGroup
	for _, key := range order {
		if totals[key].Count >= 2 {
			repeated = append(repeated, *totals[key])
		}
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].Total.GreaterThan(repeated[j].Total)
	})
	return repeated
}

// YearlyTotals groups transactions by calendar year, ascending.
func (a *Aggregator) YearlyTotals(transactions []models.Transaction) []YearGroup {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		year := t.Year()
		if year == "" {
			continue
		}
		totals[year] = totals[year].Add(t.AmountDecimal())
	}

	years := make([]string, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Strings(years)

	groups := make([]YearGroup, 0, len(years))
	for _, year := range years {
		groups = append(groups, YearGroup{Year: year, Total: totals[year]})
	}
	return groups
}

// MonthlyActivity groups transactions by YYYY-MM, ascending.
func (a *Aggregator) MonthlyActivity(transactions []models.Transaction) []MonthGroup {
	counts := make(map[string]int)
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		month := t.Month()
		if month == "" {
			continue
		}
		counts[month]++
		totals[month] = totals[month].Add(t.AmountDecimal())
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	groups := make([]MonthGroup, 0, len(months))
	for _, month := range months {
		groups = append(groups, MonthGroup{
			Month: month,
			Count: counts[month],
			Total: totals[month],
		})
	}
	return groups
}
