package parser

import (
	"regexp"
	"strconv"

	"github.com/pantrylens/receipt-parser/internal/models"
)

// itemRule pairs a structural line pattern with its extraction logic.
// The rules are evaluated in declaration order and the first whose pattern
// matches decides the line — first match, not best match. A matched rule
// whose extraction fails (zero quantity, empty name) drops the line rather
// than falling through to a later rule.
type itemRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(p *Parser, m []string) (models.PurchaseItem, bool)
}

var (
	// "2x Milk 5.98" — integer count, x, name, trailing price
	qtyPrefixPattern = regexp.MustCompile(`^(\d+)\s*[xX]\s*(.+?)\s+(\d+(?:[.,]\d+)?)$`)

	// "Bananas 1.5 kg 3.50" — name, decimal quantity, optional unit, trailing price
	qtyUnitPattern = regexp.MustCompile(
		`(?i)^(.+?)\s+(\d+(?:[.,]\d+)?)\s*(kgs|kg|gr|g|lbs|lb|oz|ltr|lt|l|ml|pcs|pc|ea)?\s+(\d+(?:[.,]\d+)?)$`)

	// "Milk 2.99" — name, trailing price
	namePricePattern = regexp.MustCompile(`^(.+?)\s+(\d+(?:[.,]\d+)?)$`)
)

var itemRules = []itemRule{
	{
		name:    "quantity-prefixed",
		pattern: qtyPrefixPattern,
		extract: func(p *Parser, m []string) (models.PurchaseItem, bool) {
			qty, err := strconv.Atoi(m[1])
			if err != nil || qty <= 0 {
				return models.PurchaseItem{}, false
			}
			return p.newItem(m[2], float64(qty), models.UnitPiece, m[3])
		},
	},
	{
		name:    "quantity-with-unit",
		pattern: qtyUnitPattern,
		extract: func(p *Parser, m []string) (models.PurchaseItem, bool) {
			qty, err := parseNumber(m[2])
			if err != nil || qty <= 0 {
				return models.PurchaseItem{}, false
			}
			return p.newItem(m[1], qty, models.NormalizeUnit(m[3]), m[4])
		},
	},
	{
		name:    "name-price",
		pattern: namePricePattern,
		extract: func(p *Parser, m []string) (models.PurchaseItem, bool) {
			// Reject lines whose name alone is noise, so payment lines with
			// a trailing amount ("CASH 20.00") are not counted as items.
			if p.isNoise(m[1]) {
				return models.PurchaseItem{}, false
			}
			return p.newItem(m[1], 1, models.UnitPiece, m[2])
		},
	},
}

// matchItem runs the candidate line through the ordered rule table.
func (p *Parser) matchItem(line string) (models.PurchaseItem, bool) {
	for _, rule := range itemRules {
		m := rule.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return rule.extract(p, m)
	}
	return models.PurchaseItem{}, false
}

// newItem assembles a purchase item from extracted parts. The price token
// may be empty or unparseable, in which case the item carries no price.
func (p *Parser) newItem(name string, qty float64, unit models.Unit, priceToken string) (models.PurchaseItem, bool) {
	name = cleanName(name)
	if name == "" {
		return models.PurchaseItem{}, false
	}
	item := models.PurchaseItem{
		Name:     name,
		Quantity: qty,
		Unit:     unit,
	}
	if priceToken != "" {
		if price, err := parseNumber(priceToken); err == nil && price >= 0 {
			item.Price = &price
		}
	}
	if c := p.tax.Categorize(name); c != models.CategoryOther {
		item.Category = c
	}
	return item, true
}
