// Package report handles the summary report command.
package report

import (
	"fmt"

	"fjacquet/purchases-csv/cmd/common"
	"fjacquet/purchases-csv/cmd/root"
	"fjacquet/purchases-csv/internal/aggregator"
	"fjacquet/purchases-csv/internal/categorizer"
	"fjacquet/purchases-csv/internal/config"
	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/purchaseparser"
	"fjacquet/purchases-csv/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Extract transactions and render the HTML summary report",
	Long: `Parse the purchase-history HTML file, write the CSV ledger and render
the self-contained HTML summary report with aggregate tables and charts.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	log := logging.NewLogrusAdapterFromLogger(root.Log)
	log.Info("Report command called",
		logging.Field{Key: logging.FieldInputFile, Value: root.SharedFlags.Input},
		logging.Field{Key: logging.FieldOutputFile, Value: root.SharedFlags.Output},
		logging.Field{Key: logging.FieldReportFile, Value: root.SharedFlags.Report})

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

	cfg := config.GetGlobalConfig()

	families, err := aggregator.LoadFamilyRules(cfg.Files.Families)
	if err != nil {
		log.WithError(err).Warn("Falling back to built-in family rules")
		families = aggregator.DefaultFamilyRules()
	}

	cat, err := categorizer.NewFromFile(cfg.Files.Categories)
	if err != nil {
		log.WithError(err).Warn("Falling back to built-in categories")
		cat = categorizer.New()
	}

	gen := report.NewGenerator(aggregator.NewWithRules(families), cat, log).
		WithChartSize(cfg.Chart.Width, cfg.Chart.Height)
	if err := gen.WriteReport(transactions, root.SharedFlags.Report); err != nil {
		log.Fatalf("Error writing HTML report: %v", err)
	}

	common.PrintSummary(transactions)
	log.Info("Report generation completed successfully!")
}
