package parser

import (
	"fjacquet/purchases-csv/internal/common"
	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
)

// BaseParser provides the logger plumbing and CSV writing shared by parser
// implementations. Parsers embed it:
//
//	type MyParser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger falls back to a default
// text logger at info level.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the parser's logger. Nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Logger returns the current logger.
func (b *BaseParser) Logger() logging.Logger {
	return b.logger
}

// WriteToCSV writes transactions with the shared ledger writer so every
// parser produces identical CSV output.
func (b *BaseParser) WriteToCSV(transactions []models.Transaction, csvFile string) error {
	b.logger.Info("Writing transactions to CSV using common writer",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return common.WriteTransactionsToCSV(transactions, csvFile)
}
