package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/purchaseparser"
)

const testPage = `<html><body>
<div class="purchase">
  <span class="invoice-date">Mar 2, 2024</span>
  <ul class="pli-list applicable-items">
    <li class="pli">
      <label class="pli-title">iCloud+ 200GB</label>
      <div class="pli-price">$2.99</div>
      <div class="pli-subscription-info">Monthly</div>
    </li>
    <li class="pli">
      <label class="pli-title">Procreate</label>
      <div class="pli-price">$12.99</div>
    </li>
  </ul>
</div>
<div class="purchase">
  <span class="invoice-date">Jan 15, 2024</span>
  <ul class="pli-list applicable-items">
    <li class="pli">
      <label class="pli-title">800 PokéCoins</label>
      <div class="pli-price">$7.99</div>
    </li>
  </ul>
</div>
</body></html>`

func writeTestPage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "purchases.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestExtractTransactions(t *testing.T) {
	mock := &logging.MockLogger{}
	inputFile := writeTestPage(t, testPage)

	transactions, err := ExtractTransactions(purchaseparser.NewAdapter(), inputFile, false, mock)
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	// Date descending.
	assert.Equal(t, "2024-03-02", transactions[0].Date)
	assert.Equal(t, "2024-03-02", transactions[1].Date)
	assert.Equal(t, "2024-01-15", transactions[2].Date)
	assert.Equal(t, "800 PokéCoins", transactions[2].ItemName)
}

func TestExtractTransactionsWithValidation(t *testing.T) {
	mock := &logging.MockLogger{}
	inputFile := writeTestPage(t, testPage)

	transactions, err := ExtractTransactions(purchaseparser.NewAdapter(), inputFile, true, mock)
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.True(t, mock.HasEntry("INFO", "Validation successful."))
}

func TestExtractTransactionsValidationRejectsOtherHTML(t *testing.T) {
	mock := &logging.MockLogger{}
	inputFile := writeTestPage(t, "<html><body><p>not a purchase page</p></body></html>")

	_, err := ExtractTransactions(purchaseparser.NewAdapter(), inputFile, true, mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a purchase-history HTML page")
}

func TestExtractTransactionsMissingFile(t *testing.T) {
	mock := &logging.MockLogger{}

	_, err := ExtractTransactions(purchaseparser.NewAdapter(),
		filepath.Join(t.TempDir(), "no_such_file.html"), false, mock)
	assert.Error(t, err)
}

func TestExtractTransactionsEmptyResult(t *testing.T) {
	mock := &logging.MockLogger{}
	inputFile := writeTestPage(t, `<html><body>
<div class="purchase">
  <span class="invoice-date">Mar 2, 2024</span>
  <ul class="pli-list applicable-items">
    <li class="pli">
      <label class="pli-title">Freebie</label>
      <div class="pli-price">Free</div>
    </li>
  </ul>
</div>
</body></html>`)

	transactions, err := ExtractTransactions(purchaseparser.NewAdapter(), inputFile, false, mock)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
