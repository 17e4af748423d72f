package parser

import "strings"

// lineKind is the classifier's verdict on a single normalized line.
type lineKind int

const (
	lineNoise lineKind = iota
	lineTotal
	lineCandidate
)

// minLineLength is the shortest line that can carry an item.
const minLineLength = 3

// defaultNoiseWords mark lines that are receipt furniture rather than items:
// totals, greetings, and payment metadata.
var defaultNoiseWords = []string{
	"total", "subtotal", "tax", "thank", "you", "receipt", "store",
	"cashier", "transaction", "credit", "debit", "card", "change",
	"cash", "payment", "balance",
}

// defaultGroceryKeywords identify real grocery items. They both override the
// noise-word check (an item name may embed a noise substring) and drive the
// fallback pass.
var defaultGroceryKeywords = []string{
	"milk", "bread", "eggs", "cheese", "butter", "yogurt", "chicken",
	"beef", "pork", "fish", "salmon", "apple", "banana", "orange",
	"tomato", "potato", "onion", "rice", "pasta", "cereal", "flour",
	"sugar", "salt", "coffee", "tea", "juice", "water", "soda",
	"chips", "cookies", "crackers", "snack",
}

// classify decides what the assembler should do with a trimmed, non-empty
// line. The total check runs before the noise check: a total line contains
// the noise word "total" but must still surface so the assembler can record
// the amount instead of skipping silently.
func (p *Parser) classify(line string) lineKind {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "total") && !strings.Contains(lower, "subtotal") {
		return lineTotal
	}
	if p.isNoise(line) {
		return lineNoise
	}
	return lineCandidate
}

// isNoise reports whether the line is non-item content. A grocery keyword
// overrides the noise-word check but not the length or symbol-only checks.
func (p *Parser) isNoise(line string) bool {
	if len(line) < minLineLength {
		return true
	}
	if !hasLetter(line) {
		return true
	}
	lower := strings.ToLower(line)
	if p.containsGroceryKeyword(lower) {
		return false
	}
	for _, w := range p.noiseWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// containsGroceryKeyword expects an already-lowercased line.
func (p *Parser) containsGroceryKeyword(lower string) bool {
	for _, kw := range p.groceryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
