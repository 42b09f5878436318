package purchaseparser

import (
	"io"

	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
	"fjacquet/purchases-csv/internal/parser"
)

// Adapter implements parser.FileParser for purchase-history HTML files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a purchase-history parser adapter.
func NewAdapter() *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(nil)}
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.Transaction, error) {
	return Parse(r, a.Logger())
}

// ParseFile implements parser.FileParser.
func (a *Adapter) ParseFile(filePath string) ([]models.Transaction, error) {
	return ParseFileWithLogger(filePath, a.Logger())
}

// ValidateFormat implements parser.FileParser.
func (a *Adapter) ValidateFormat(filePath string) (bool, error) {
	return ValidateFormatWithLogger(filePath, a.Logger())
}

// ConvertToCSV parses the input file and writes the date-descending ledger.
// When no paid transactions survive extraction no output file is written;
// that is a normal outcome, not an error.
func (a *Adapter) ConvertToCSV(inputFile, outputFile string) error {
	transactions, err := a.ParseFile(inputFile)
	if err != nil {
		return err
	}

	if len(transactions) == 0 {
		a.Logger().Info("No paid transactions found, skipping CSV output",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
		return nil
	}

	models.SortByDateDesc(transactions)
	return a.WriteToCSV(transactions, outputFile)
}
