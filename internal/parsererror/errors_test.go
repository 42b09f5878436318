package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("bad month name")
	err := &ParseError{Parser: "purchase", Field: "invoice_date", Value: "Foo 1, 2024", Err: cause}

	assert.Equal(t, "purchase: failed to parse invoice_date='Foo 1, 2024': bad month name", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "purchases.html", Reason: "no purchase blocks found"}
	assert.Equal(t, "validation failed for purchases.html: no purchase blocks found", err.Error())
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "notes.txt",
		ExpectedFormat: "saved purchase-history HTML page",
		Msg:            "no purchase blocks found",
	}
	assert.Equal(t,
		"invalid format in file 'notes.txt': no purchase blocks found. Expected: saved purchase-history HTML page",
		err.Error())
}

func TestDataExtractionError(t *testing.T) {
	err := &DataExtractionError{FilePath: "purchases.html", FieldName: "amount", Reason: "price label missing"}
	assert.Equal(t,
		"data extraction failed in file 'purchases.html' for field 'amount': price label missing",
		err.Error())
}
