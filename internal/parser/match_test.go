package parser

import (
	"testing"

	"github.com/pantrylens/receipt-parser/internal/models"
)

func TestMatchItemQuantityPrefixed(t *testing.T) {
	p := New()

	item, ok := p.matchItem("2x Milk 5.98")
	if !ok {
		t.Fatal("expected a match")
	}
	if item.Name != "Milk" {
		t.Errorf("Name = %q, want %q", item.Name, "Milk")
	}
	if item.Quantity != 2 {
		t.Errorf("Quantity = %v, want 2", item.Quantity)
	}
	if item.Unit != models.UnitPiece {
		t.Errorf("Unit = %q, want %q", item.Unit, models.UnitPiece)
	}
	if item.Price == nil || *item.Price != 5.98 {
		t.Errorf("Price = %v, want 5.98", item.Price)
	}
	if item.Category != models.CategoryDairy {
		t.Errorf("Category = %q, want %q", item.Category, models.CategoryDairy)
	}
}

func TestMatchItemQuantityWithUnit(t *testing.T) {
	p := New()

	item, ok := p.matchItem("Bananas 1.5 kg 3.50")
	if !ok {
		t.Fatal("expected a match")
	}
	if item.Name != "Bananas" {
		t.Errorf("Name = %q, want %q", item.Name, "Bananas")
	}
	if item.Quantity != 1.5 {
		t.Errorf("Quantity = %v, want 1.5", item.Quantity)
	}
	if item.Unit != models.UnitKilogram {
		t.Errorf("Unit = %q, want %q", item.Unit, models.UnitKilogram)
	}
	if item.Price == nil || *item.Price != 3.50 {
		t.Errorf("Price = %v, want 3.50", item.Price)
	}
	if item.Category != models.CategoryFruits {
		t.Errorf("Category = %q, want %q", item.Category, models.CategoryFruits)
	}
}

func TestMatchItemBareNamePrice(t *testing.T) {
	p := New()

	item, ok := p.matchItem("Milk 2.99")
	if !ok {
		t.Fatal("expected a match")
	}
	if item.Name != "Milk" {
		t.Errorf("Name = %q, want %q", item.Name, "Milk")
	}
	if item.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", item.Quantity)
	}
	if item.Unit != models.UnitPiece {
		t.Errorf("Unit = %q, want %q", item.Unit, models.UnitPiece)
	}
	if item.Price == nil || *item.Price != 2.99 {
		t.Errorf("Price = %v, want 2.99", item.Price)
	}
}

func TestMatchItemTable(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		line     string
		wantOK   bool
		itemName string
		quantity float64
		unit     models.Unit
		price    float64 // -1 means no price expected
		category models.Category
	}{
		{"quantity with spaces around x", "3 x Eggs 4.29", true, "Eggs", 3, models.UnitPiece, 4.29, models.CategoryDairy},
		{"weight in pounds", "Apples 0.75 lb 1.20", true, "Apples", 0.75, models.UnitPound, 1.20, models.CategoryFruits},
		{"volume in liters", "Orange Juice 1 L 4.99", true, "Orange Juice", 1, models.UnitLiter, 4.99, models.CategoryFruits},
		{"weight without unit token", "Grapes 0.8 2.40", true, "Grapes", 0.8, models.UnitPiece, 2.40, models.CategoryFruits},
		{"comma decimal price", "Chips 2,50", true, "Chips", 1, models.UnitPiece, 2.50, models.CategorySnacks},
		{"uncategorized item", "Paper Towels 5.49", true, "Paper Towels", 1, models.UnitPiece, 5.49, ""},
		{"no trailing number", "Bananas", false, "", 0, "", 0, ""},
		{"empty line", "", false, "", 0, "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := p.matchItem(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("matchItem(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if item.Name != tt.itemName {
				t.Errorf("Name = %q, want %q", item.Name, tt.itemName)
			}
			if item.Quantity != tt.quantity {
				t.Errorf("Quantity = %v, want %v", item.Quantity, tt.quantity)
			}
			if item.Unit != tt.unit {
				t.Errorf("Unit = %q, want %q", item.Unit, tt.unit)
			}
			if item.Price == nil || *item.Price != tt.price {
				t.Errorf("Price = %v, want %v", item.Price, tt.price)
			}
			if item.Category != tt.category {
				t.Errorf("Category = %q, want %q", item.Category, tt.category)
			}
		})
	}
}

// The bare name-price rule must reject a line whose name alone is noise,
// so payment lines never become items.
func TestMatchItemRejectsNoiseName(t *testing.T) {
	p := New()

	for _, line := range []string{"CASH 20.00", "CHANGE 4.33", "BALANCE 0.00"} {
		if _, ok := p.matchItem(line); ok {
			t.Errorf("matchItem(%q) matched, want rejection (noise name)", line)
		}
	}
}

// Rule order is fixed: a line matching the quantity-prefixed shape must
// never be interpreted by a later rule.
func TestMatchItemRulePrecedence(t *testing.T) {
	p := New()

	item, ok := p.matchItem("2x Milk 5.98")
	if !ok {
		t.Fatal("expected a match")
	}
	// Under the bare name-price rule this would be name "2x Milk" with
	// quantity 1; the quantity-prefixed rule must win instead.
	if item.Quantity != 2 || item.Name != "Milk" {
		t.Errorf("got name %q quantity %v, want %q and 2 (quantity-prefixed rule first)",
			item.Name, item.Quantity, "Milk")
	}
}
