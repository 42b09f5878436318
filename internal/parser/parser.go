// Package parser defines the interfaces implemented by input-format parsers.
package parser

import (
	"io"

	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
)

// Parser reads data from an io.Reader and returns the extracted Transaction
// models. Implementations understand one specific input format and are
// expected to return the typed errors from internal/parsererror for failures
// that abort a run; recoverable structural noise is skipped, not surfaced.
type Parser interface {
	Parse(r io.Reader) ([]models.Transaction, error)
}

// FileParser is the full per-format surface the commands program against.
type FileParser interface {
	Parser

	// ParseFile parses the file at the given path.
	ParseFile(filePath string) ([]models.Transaction, error)

	// ValidateFormat cheaply checks whether the file looks like this
	// parser's input format.
	ValidateFormat(filePath string) (bool, error)

	// ConvertToCSV parses the input file and writes the transaction ledger
	// to the output CSV file.
	ConvertToCSV(inputFile, outputFile string) error

	// SetLogger configures the parser's logger.
	SetLogger(logger logging.Logger)
}
