package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDollarAmount(t *testing.T) {
	tests := []struct {
		name       string
		priceText  string
		expected   string
		expectedOk bool
	}{
		{"Plain amount", "$4.99", "$4.99", true},
		{"Whole dollars", "$12", "$12", true},
		{"Single decimal preserved verbatim", "$1.5", "$1.5", true},
		{"Amount with surrounding text", "Total: $9.99 (incl. tax)", "$9.99", true},
		{"Free text", "Free", "", false},
		{"Free embedded", "Included Free", "", false},
		{"Literal zero", "$0.00", "", false},
		{"Zero digits", "$0", "", false},
		{"Empty", "", "", false},
		{"Whitespace only", "   ", "", false},
		{"No currency match", "N/A", "", false},
		{"Euro not matched", "€4.99", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := ExtractDollarAmount(tc.priceText)
			assert.Equal(t, tc.expectedOk, ok)
			assert.Equal(t, tc.expected, amount)
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("$4.99")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("4.99")))

	amount, err = ParseAmount("12")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(12)))

	_, err = ParseAmount("$not-a-number")
	assert.Error(t, err)
}

func TestIsCanonicalAmount(t *testing.T) {
	assert.True(t, IsCanonicalAmount("$4.99"))
	assert.True(t, IsCanonicalAmount("$12"))
	assert.True(t, IsCanonicalAmount("$1.5"))
	assert.False(t, IsCanonicalAmount("4.99"))
	assert.False(t, IsCanonicalAmount("$4."))
	assert.False(t, IsCanonicalAmount("$-4.99"))
	assert.False(t, IsCanonicalAmount(""))
}
