// Package taxonomy assigns grocery categories to item names by keyword match.
package taxonomy

import (
	"strings"

	"github.com/pantrylens/receipt-parser/internal/models"
)

// Entry associates one category with its keyword set. Entry order is
// significant: when a name matches keywords from two categories, the
// earlier entry wins.
type Entry struct {
	Category models.Category
	Keywords []string
}

// Taxonomy is an ordered list of category entries.
type Taxonomy struct {
	entries []Entry
}

// defaultEntries is the built-in grocery taxonomy. The declaration order is
// the tie-break order.
var defaultEntries = []Entry{
	{models.CategoryFruits, []string{
		"apple", "banana", "orange", "grape", "berry", "strawberr", "blueberr",
		"lemon", "lime", "peach", "pear", "melon", "mango", "pineapple", "kiwi",
	}},
	{models.CategoryVegetables, []string{
		"tomato", "potato", "onion", "carrot", "lettuce", "spinach", "broccoli",
		"pepper", "cucumber", "celery", "garlic", "cabbage", "mushroom", "corn",
	}},
	{models.CategoryDairy, []string{
		"milk", "cheese", "yogurt", "yoghurt", "butter", "cream", "egg",
	}},
	{models.CategoryMeat, []string{
		"chicken", "beef", "pork", "turkey", "ham", "bacon", "sausage", "lamb", "steak",
	}},
	{models.CategorySeafood, []string{
		"fish", "salmon", "tuna", "shrimp", "crab", "cod", "prawn",
	}},
	{models.CategoryBakery, []string{
		"bread", "bagel", "bun", "croissant", "muffin", "roll", "cake", "tortilla", "baguette",
	}},
	{models.CategoryBeverages, []string{
		"juice", "soda", "coffee", "tea", "water", "cola", "beer", "wine", "drink",
	}},
	{models.CategorySnacks, []string{
		"chips", "cookie", "cracker", "candy", "chocolate", "popcorn", "pretzel", "snack", "nuts",
	}},
}

// Default returns a taxonomy with the built-in category entries.
func Default() *Taxonomy {
	return New(defaultEntries)
}

// New returns a taxonomy with the given entries, evaluated in order.
func New(entries []Entry) *Taxonomy {
	return &Taxonomy{entries: entries}
}

// Categorize returns the first category whose keyword set has a
// case-insensitive substring match against the name, or CategoryOther when
// nothing matches.
func (t *Taxonomy) Categorize(name string) models.Category {
	lower := strings.ToLower(name)
	for _, e := range t.entries {
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				return e.Category
			}
		}
	}
	return models.CategoryOther
}
