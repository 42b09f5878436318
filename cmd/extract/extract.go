// Package extract handles the HTML-to-CSV extraction command.
package extract

import (
	"fmt"

	"fjacquet/purchases-csv/cmd/common"
	"fjacquet/purchases-csv/cmd/root"
	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/purchaseparser"

	"github.com/spf13/cobra"
)

// Cmd represents the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract purchase transactions to a CSV ledger",
	Long: `Parse the purchase-history HTML file and write the paid line-item
transactions to a CSV ledger sorted by date descending.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)
	log.Info("Extract command called",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output})

	p := purchaseparser.NewAdapter()
	transactions, err := common.ExtractTransactions(p, root.SharedFlags.Input, root.SharedFlags.Validate, log)
	if err != nil {
		log.Fatalf("Error extracting transactions: %v", err)
	}

	if len(transactions) == 0 {
		fmt.Println("No paid transactions found.")
		return
	}

	if err := p.WriteToCSV(transactions, root.SharedFlags.Output); err != nil {
		log.Fatalf("Error writing CSV ledger: %v", err)
	}

	common.PrintSummary(transactions)
	log.Info("Extraction completed successfully!")
}
