package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/purchases-csv/internal/models"
)

func sampleLedger() []models.Transaction {
	return []models.Transaction{
		{Date: "2024-03-02", ItemName: "iCloud+ 200GB", Amount: "$2.99", Subscription: true},
		{Date: "2024-03-01", ItemName: "Procreate", Amount: "$12.99", Subscription: false},
		{Date: "2024-02-15", ItemName: "800 PokéCoins", Amount: "$7.99", Subscription: false},
	}
}

func TestWriteTransactionsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleLedger(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Item Name,Amount,Subscription", lines[0])
	assert.Equal(t, "2024-03-02,iCloud+ 200GB,$2.99,Yes", lines[1])
	assert.Equal(t, "2024-03-01,Procreate,$12.99,No", lines[2])
}

func TestWriteTransactionsToCSVNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "ledger.csv"))
	assert.Error(t, err)
}

func TestWriteTransactionsToCSVEmptySliceWritesHeaderOnly(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "Date,Item Name,Amount,Subscription", strings.TrimSpace(string(data)))
}

func TestWriteTransactionsToCSVCreatesDirectories(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "nested", "dir", "ledger.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleLedger(), csvFile))
	assert.FileExists(t, csvFile)
}

func TestLedgerRoundTrip(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "ledger.csv")
	original := sampleLedger()
	require.NoError(t, WriteTransactionsToCSV(original, csvFile))

	restored, err := ReadLedgerCSV(csvFile)
	require.NoError(t, err)
	require.Len(t, restored, len(original))

	for i := range original {
		assert.Equal(t, original[i].Date, restored[i].Date)
		assert.Equal(t, original[i].ItemName, restored[i].ItemName)
		assert.Equal(t, original[i].Amount, restored[i].Amount)
		assert.Equal(t, original[i].Subscription, restored[i].Subscription)
	}
}

func TestReadLedgerCSVMissingFile(t *testing.T) {
	_, err := ReadLedgerCSV(filepath.Join(t.TempDir(), "no_such_file.csv"))
	assert.Error(t, err)
}

func TestSetDelimiter(t *testing.T) {
	defer SetDelimiter(',')

	SetDelimiter(';')
	csvFile := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleLedger(), csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Equal(t, "Date;Item Name;Amount;Subscription",
		strings.Split(strings.TrimSpace(string(data)), "\n")[0])
}
