package parser

import (
	"regexp"
	"strings"

	"github.com/pantrylens/receipt-parser/internal/models"
)

// trailingNumberPattern isolates a numeric token at the end of a line.
var trailingNumberPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*$`)

// fallbackScan is the looser keyword-driven pass, run only when the
// structured pass produced zero items. Any line containing a grocery keyword
// that is not noise becomes an item: a trailing numeric token (when present)
// is taken as the price and stripped from the name. Total lines are never
// re-examined, whether or not they yielded an amount.
func (p *Parser) fallbackScan(lines []string, totalIdx int) []models.PurchaseItem {
	var items []models.PurchaseItem

	for i, line := range lines {
		if i == totalIdx || p.classify(line) == lineTotal {
			continue
		}
		if !p.containsGroceryKeyword(strings.ToLower(line)) {
			continue
		}
		if p.isNoise(line) {
			continue
		}

		name := line
		var priceToken string
		if m := trailingNumberPattern.FindStringSubmatch(line); m != nil {
			priceToken = m[1]
			name = line[:len(line)-len(m[0])]
		}

		item, ok := p.newItem(name, 1, models.UnitPiece, priceToken)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	return items
}
