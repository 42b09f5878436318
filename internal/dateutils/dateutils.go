// Package dateutils provides the date handling used by the extraction
// pipeline: invoice date parsing and the subscription period detection.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date format constants.
const (
	// DateLayoutISO is the canonical output format (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
	// DateLayoutInvoice is the only date format the purchase page emits
	// ("Jan 5, 2023").
	DateLayoutInvoice = "Jan 2, 2006"
)

// dateRangePattern matches subscription period labels such as
// "Jan 1, 2023 - Jan 31, 2023". Some structural variants render this label
// where the item title belongs.
var dateRangePattern = regexp.MustCompile(`^\w{3} \d{1,2}, \d{4} - \w{3} \d{1,2}, \d{4}$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ParseInvoiceDate parses an invoice date in the page's "Mon D, YYYY" format.
// Any other format is an error; the caller decides whether that skips the
// block or aborts.
func ParseInvoiceDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	t, err := time.Parse(DateLayoutInvoice, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse invoice date %q: %w", dateStr, err)
	}
	return t, nil
}

// ToISODate formats a time as the canonical YYYY-MM-DD string.
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// IsDateRange reports whether text is a subscription period label rather
// than a real item title.
func IsDateRange(text string) bool {
	return dateRangePattern.MatchString(strings.TrimSpace(text))
}

// CleanDateString trims a date string and collapses internal whitespace runs
// to single spaces.
func CleanDateString(dateStr string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// IsCanonicalDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date.
func IsCanonicalDate(s string) bool {
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}
