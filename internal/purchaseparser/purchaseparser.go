// Package purchaseparser extracts paid line-item transactions from a locally
// saved HTML export of an online purchase-history page.
//
// The page groups line items into purchase blocks, each carrying one invoice
// date. Markup is inconsistent across blocks: placeholder items, free and
// refunded entries, missing dates and empty item lists are all expected
// noise, so the parser skips the smallest unit it can (item, then block)
// instead of failing the run.
package purchaseparser

import (
	"fmt"
	"io"
	"os"

	"fjacquet/purchases-csv/internal/dateutils"
	"fjacquet/purchases-csv/internal/htmldoc"
	"fjacquet/purchases-csv/internal/logging"
	"fjacquet/purchases-csv/internal/models"
	"fjacquet/purchases-csv/internal/parsererror"
)

// Structural markers identifying the pieces of a purchase-history page.
const (
	classPurchase         = "purchase"
	classInvoiceDate      = "invoice-date"
	classItemList         = "pli-list"
	classApplicableItems  = "applicable-items"
	classLineItem         = "pli"
	classTitle            = "pli-title"
	classPublisher        = "pli-publisher"
	classPrice            = "pli-price"
	classSubscriptionInfo = "pli-subscription-info"
	classArtwork          = "pli-artwork"

	attrFreeMarker  = "data-auto-test-id"
	freeMarkerValue = "Label.Free"
	attrItemLabel   = "aria-label"
)

// Parse extracts transactions from purchase-history HTML read from r.
// Only markup that cannot be parsed at all is an error; blocks and items
// with missing or unusable pieces are skipped.
func Parse(r io.Reader, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	doc, err := htmldoc.Parse(r)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "purchase",
			Field:  "document",
			Err:    err,
		}
	}

	return extractFromDocument(doc, logger), nil
}

// ParseFile extracts transactions from the purchase-history HTML file at the
// given path.
func ParseFile(filePath string) ([]models.Transaction, error) {
	return ParseFileWithLogger(filePath, nil)
}

// ParseFileWithLogger is ParseFile with an explicit logger.
func ParseFileWithLogger(filePath string, logger logging.Logger) ([]models.Transaction, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Reading purchase-history HTML file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	doc, err := htmldoc.LoadFile(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to load HTML file")
		return nil, fmt.Errorf("error loading HTML file: %w", err)
	}

	return extractFromDocument(doc, logger), nil
}

// ValidateFormat checks that the file parses as HTML and contains at least
// one purchase container.
func ValidateFormat(filePath string) (bool, error) {
	return ValidateFormatWithLogger(filePath, nil)
}

// ValidateFormatWithLogger is ValidateFormat with an explicit logger.
func ValidateFormatWithLogger(filePath string, logger logging.Logger) (bool, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if _, err := os.Stat(filePath); err != nil {
		return false, fmt.Errorf("cannot access file: %w", err)
	}

	doc, err := htmldoc.LoadFile(filePath)
	if err != nil {
		return false, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "purchase-history HTML",
			Msg:            err.Error(),
		}
	}

	if doc.FindFirst("div", htmldoc.WithClass(classPurchase)) == nil {
		logger.Warn("No purchase containers found in document",
			logging.Field{Key: logging.FieldFile, Value: filePath})
		return false, nil
	}
	return true, nil
}

// extractFromDocument walks all purchase blocks and assembles transactions
// from the items that survive extraction. The parsed tree is not retained
// past this call.
func extractFromDocument(doc *htmldoc.Document, logger logging.Logger) []models.Transaction {
	purchases := doc.FindAll("div", htmldoc.WithClass(classPurchase))
	logger.Info("Found purchase entries",
		logging.Field{Key: logging.FieldBlocks, Value: len(purchases)})

	var transactions []models.Transaction
	for _, purchase := range purchases {
		transactions = append(transactions, extractBlock(purchase, logger)...)
	}

	logger.Info("Extraction complete",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions
}

// extractBlock extracts the transactions of one purchase block. A block
// without a date element or item list is structural noise and yields none;
// an unparsable date text is skipped with a diagnostic since, unlike a
// missing element, it suggests the page format changed.
func extractBlock(purchase *htmldoc.Node, logger logging.Logger) []models.Transaction {
	dateSpan := purchase.FindFirst("span", htmldoc.WithClass(classInvoiceDate))
	if dateSpan == nil {
		return nil
	}

	invoiceDate, err := dateutils.ParseInvoiceDate(dateSpan.CollapsedText())
	if err != nil {
		logger.WithError(err).Warn("Skipping purchase block with unparsable invoice date",
			logging.Field{Key: logging.FieldDate, Value: dateSpan.CollapsedText()})
		return nil
	}
	formattedDate := dateutils.ToISODate(invoiceDate)

	itemList := purchase.FindFirst("ul",
		htmldoc.WithAllClasses(classItemList, classApplicableItems))
	if itemList == nil {
		return nil
	}

	var transactions []models.Transaction
	for _, item := range itemList.FindAll("li", htmldoc.WithClass(classLineItem)) {
		fields, ok := extractLineItem(item)
		if !ok {
			continue
		}
		transactions = append(transactions, models.Transaction{
			Date:         formattedDate,
			ItemName:     fields.name,
			Amount:       fields.amount,
			Subscription: models.YesNo(fields.subscription),
			IconPath:     fields.iconPath,
		})
	}
	return transactions
}
