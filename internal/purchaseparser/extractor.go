package purchaseparser

import (
	"strings"

	"fjacquet/purchases-csv/internal/currencyutils"
	"fjacquet/purchases-csv/internal/dateutils"
	"fjacquet/purchases-csv/internal/htmldoc"
	"fjacquet/purchases-csv/internal/textutils"
)

// subscriptionKeywords classify an item as a subscription by name when the
// markup carries no subscription-info element. Matching is case-sensitive.
var subscriptionKeywords = []string{"iCloud+", "iCloud", "subscription", "Subscription"}

// lineItemFields holds the resolved fields of one surviving line item.
type lineItemFields struct {
	name         string
	amount       string
	subscription bool
	iconPath     string
}

// extractLineItem resolves the fields of one li.pli node. The second return
// is false when the item is not a payable line (no title, no price, free or
// zero amount); those are expected and skipped silently.
func extractLineItem(item *htmldoc.Node) (lineItemFields, bool) {
	name, ok := extractItemName(item)
	if !ok {
		return lineItemFields{}, false
	}

	amount, ok := extractAmount(item)
	if !ok {
		return lineItemFields{}, false
	}

	return lineItemFields{
		name:         name,
		amount:       amount,
		subscription: isSubscriptionItem(item, name),
		iconPath:     extractIconPath(item),
	}, true
}

// extractItemName resolves the item name with the title/publisher precedence
// rules:
//
//  1. the title element is label.pli-title or div.pli-title, first match wins;
//  2. inside it a non-empty aria-label on a nested div beats the visible text;
//  3. a title that is really a subscription period label ("Jan 1, 2023 -
//     Jan 31, 2023") is replaced by the publisher name when one exists;
//  4. a publisher differing from the resolved name is prefixed to it, to
//     tell same-titled items from different publishers apart.
func extractItemName(item *htmldoc.Node) (string, bool) {
	titleElem := item.FindFirst("label", htmldoc.WithClass(classTitle))
	if titleElem == nil {
		titleElem = item.FindFirst("div", htmldoc.WithClass(classTitle))
	}
	if titleElem == nil {
		return "", false
	}

	var name string
	if labeled := titleElem.FindFirst("div", htmldoc.WithAttrPresent(attrItemLabel)); labeled != nil {
		name = textutils.CollapseWhitespace(labeled.Attr(attrItemLabel))
	}
	if name == "" {
		name = titleElem.CollapsedText()
	}
	if name == "" {
		return "", false
	}

	publisher := publisherName(item)

	if dateutils.IsDateRange(name) && publisher != "" {
		// period label rendered where the title belongs; the publisher is
		// the real item name
		name = publisher
	}

	if publisher != "" && publisher != name {
		name = publisher + " - " + name
	}

	return name, true
}

func publisherName(item *htmldoc.Node) string {
	publisherDiv := item.FindFirst("div", htmldoc.WithClass(classPublisher))
	if publisherDiv == nil {
		return ""
	}
	return publisherDiv.CollapsedText()
}

// extractAmount resolves the canonical amount string of a line item. Items
// without a price container, with a free marker, or with a zero or
// unparsable amount are not payable lines.
func extractAmount(item *htmldoc.Node) (string, bool) {
	priceDiv := item.FindFirst("div", htmldoc.WithClass(classPrice))
	if priceDiv == nil {
		return "", false
	}

	if priceDiv.FindFirst("span", htmldoc.WithAttrContaining(attrFreeMarker, freeMarkerValue)) != nil {
		return "", false
	}

	return currencyutils.ExtractDollarAmount(priceDiv.CollapsedText())
}

// isSubscriptionItem classifies an item as a subscription, structurally
// first, by name keywords second.
func isSubscriptionItem(item *htmldoc.Node, name string) bool {
	if item.FindFirst("div", htmldoc.WithClass(classSubscriptionInfo)) != nil {
		return true
	}
	return textutils.ContainsAny(name, subscriptionKeywords...)
}

// extractIconPath resolves the optional artwork reference. Missing pieces at
// any step simply yield no icon.
func extractIconPath(item *htmldoc.Node) string {
	artwork := item.FindFirst("div", htmldoc.WithClass(classArtwork))
	if artwork == nil {
		return ""
	}
	img := artwork.FindFirst("img")
	if img == nil {
		return ""
	}
	return strings.TrimSpace(img.Attr("src"))
}
