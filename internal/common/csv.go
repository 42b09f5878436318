// Package common provides the shared CSV ledger reading and writing used by
// the parser and the commands.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger sets a configured logger for this package. Nil is ignored.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadLedgerCSV reads a ledger CSV file back into transactions. Used by the
// round-trip tests and by anyone post-processing a previously written ledger.
func ReadLedgerCSV(filePath string) ([]models.Transaction, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading ledger CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField(logging.FieldCount, len(transactions)).Info("Successfully read ledger CSV")
	return transactions, nil
}

// WriteTransactionsToCSV writes the transaction ledger to a CSV file. The
// column layout comes from the struct tags on models.Transaction; row order
// is the caller's (the ledger contract is date descending, which the
// commands establish before writing).
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  csvFile,
		logging.FieldCount: len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  csvFile,
		logging.FieldCount: len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}
