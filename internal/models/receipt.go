package models

import "strings"

// PurchaseItem represents a single item extracted from a receipt line.
type PurchaseItem struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Unit     Unit     `json:"unit"`
	Price    *float64 `json:"price,omitempty"`
	Category Category `json:"category,omitempty"`
}

// ParsedReceipt is the aggregate result of parsing one receipt's OCR text.
// It is a plain value: constructed once per parse and never mutated after.
type ParsedReceipt struct {
	Items       []PurchaseItem `json:"items"`
	TotalAmount *float64       `json:"totalAmount,omitempty"`
	Date        string         `json:"date,omitempty"`
	StoreName   string         `json:"storeName,omitempty"`
	RawText     string         `json:"rawText"`
}

// Category is a grocery category tag assigned by the taxonomy.
type Category string

const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategorySeafood    Category = "seafood"
	CategoryBakery     Category = "bakery"
	CategoryBeverages  Category = "beverages"
	CategorySnacks     Category = "snacks"
	CategoryOther      Category = "other"
)

// Unit is a measurement unit attached to a purchase item. A token outside
// the canonical set is kept verbatim so unusual receipt text round-trips.
type Unit string

const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitPound      Unit = "lb"
	UnitOunce      Unit = "oz"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "mL"
	UnitPiece      Unit = "piece"
)

// NormalizeUnit maps a raw unit token from a receipt line to the canonical
// unit set. An empty token means no unit was printed and defaults to piece.
func NormalizeUnit(token string) Unit {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "":
		return UnitPiece
	case "kg", "kgs", "kilo", "kilos", "kilogram":
		return UnitKilogram
	case "g", "gr", "gram", "grams":
		return UnitGram
	case "lb", "lbs", "pound", "pounds":
		return UnitPound
	case "oz", "ounce", "ounces":
		return UnitOunce
	case "l", "lt", "ltr", "liter", "litre":
		return UnitLiter
	case "ml":
		return UnitMilliliter
	case "pc", "pcs", "piece", "pieces", "ea", "each":
		return UnitPiece
	default:
		return Unit(strings.TrimSpace(token))
	}
}
