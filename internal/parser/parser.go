// Package parser converts raw OCR text from a receipt into structured
// purchase records. The pipeline is a pure function of its input: no I/O,
// no shared state, and no error path — pathological input yields an empty
// item list, never a failure.
package parser

import (
	"strings"

	"github.com/pantrylens/receipt-parser/internal/models"
	"github.com/pantrylens/receipt-parser/internal/taxonomy"
)

// Parser holds the taxonomy and word lists the pipeline matches against.
type Parser struct {
	tax             *taxonomy.Taxonomy
	noiseWords      []string
	groceryKeywords []string
}

// Options overrides the built-in taxonomy and word lists. Zero-value fields
// keep the defaults.
type Options struct {
	Taxonomy        *taxonomy.Taxonomy
	NoiseWords      []string
	GroceryKeywords []string
}

// New returns a parser with the built-in taxonomy and word lists.
func New() *Parser {
	return NewWithOptions(Options{})
}

// NewWithOptions returns a parser with the given overrides applied.
func NewWithOptions(opts Options) *Parser {
	p := &Parser{
		tax:             opts.Taxonomy,
		noiseWords:      opts.NoiseWords,
		groceryKeywords: opts.GroceryKeywords,
	}
	if p.tax == nil {
		p.tax = taxonomy.Default()
	}
	if p.noiseWords == nil {
		p.noiseWords = defaultNoiseWords
	}
	if p.groceryKeywords == nil {
		p.groceryKeywords = defaultGroceryKeywords
	}
	return p
}

// Parse converts raw receipt text into a ParsedReceipt. It is total over
// all string inputs, including the empty string.
func (p *Parser) Parse(rawText string) *models.ParsedReceipt {
	receipt := &models.ParsedReceipt{
		Items:   []models.PurchaseItem{},
		RawText: rawText,
	}

	lines := normalizeLines(rawText)
	if len(lines) == 0 {
		return receipt
	}

	// Best-effort: the first non-empty line is usually the store name.
	receipt.StoreName = lines[0]

	// First date-shaped token anywhere in the text wins.
	for _, line := range lines {
		if m := datePattern.FindString(line); m != "" {
			receipt.Date = m
			break
		}
	}

	// Structured pass. totalIdx records which line the total was taken
	// from so the fallback pass never re-examines it.
	totalIdx := -1
	for i, line := range lines {
		switch p.classify(line) {
		case lineNoise:
			// skip silently
		case lineTotal:
			if receipt.TotalAmount == nil {
				if amt, ok := firstAmount(line); ok {
					receipt.TotalAmount = &amt
					totalIdx = i
				}
			}
		case lineCandidate:
			if item, ok := p.matchItem(line); ok {
				receipt.Items = append(receipt.Items, item)
			}
		}
	}

	// Fallback pass, only after the entire structured pass came up empty.
	if len(receipt.Items) == 0 {
		if items := p.fallbackScan(lines, totalIdx); len(items) > 0 {
			receipt.Items = items
		}
	}

	return receipt
}

// normalizeLines splits raw text on newlines, trims each line, repairs OCR
// decimal-point misreads, and drops empty lines, preserving order.
func normalizeLines(rawText string) []string {
	var lines []string
	for _, raw := range strings.Split(rawText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, sanitizeOCRLine(line))
	}
	return lines
}
