// Package root contains the root command for the application.
package root

import (
	"fjacquet/purchases-csv/internal/common"
	"fjacquet/purchases-csv/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the subcommands.
type CommonFlags struct {
	Input    string
	Output   string
	Report   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "purchases-csv",
		Short: "Extract transactions from a saved purchase-history HTML page.",
		Long: `purchases-csv parses a locally saved HTML export of an online purchase
history page, extracts the paid line-item transactions and writes a sorted
CSV ledger and an HTML summary report with aggregate tables and charts.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to purchases-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
			common.SetLogger(Log)

			cfg := config.GetGlobalConfig()
			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init initializes the root command flags. Flag defaults are the configured
// fixed file names, so running a subcommand with no flags reproduces the
// original fixed-name workflow.
func Init() {
	cfg := config.GetGlobalConfig()

	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", cfg.Files.Input, "Input purchase-history HTML file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", cfg.Files.Output, "Output CSV ledger file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Report, "report", "r", cfg.Files.Report, "Output HTML report file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before extraction")
}
