// Package common contains shared functionality for command handlers.
package common

import (
	"fmt"

	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
	"fjacquet/purchases-csv/internal/parser"
)

// ExtractTransactions validates (optionally), parses the input file and
// returns the ledger sorted date descending. A run that finds no paid
// transactions returns an empty slice and no error.
func ExtractTransactions(p parser.FileParser, inputFile string, validate bool, log logging.Logger) ([]models.Transaction, error) {
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, fmt.Errorf("file is not a purchase-history HTML page: %s", inputFile)
		}
		log.Info("Validation successful.")
	}

	transactions, err := p.ParseFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	models.SortByDateDesc(transactions)
	return transactions, nil
}

// PrintSummary writes the informational run summary to stdout, mirroring the
// console output of the original workflow. Not a stable contract.
func PrintSummary(transactions []models.Transaction) {
	s := models.Summarize(transactions)

	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Total paid transactions: %d\n", s.Total)
	fmt.Printf("  Total amount: $%s\n", s.TotalAmount.StringFixed(2))
	fmt.Printf("  Subscriptions: %d\n", s.Subscriptions)
	fmt.Printf("  One-time purchases: %d\n", s.OneTime)
}
