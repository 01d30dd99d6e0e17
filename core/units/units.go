// Package units converts food and body measurements between unit symbols.
//
// Every category routes through one base unit: grams for weight, milliliters
// for volume and centimeters for length. The tables are fixed at compile time
// and never mutated, so all functions are safe for concurrent use.
package units

import "strings"

// Category is a family of units that can be converted into each other
type Category int

const (
	// Weight units convert through grams
	Weight Category = iota
	// Volume units convert through milliliters
	Volume
	// Length units convert through centimeters
	Length
)

// String returns string representation
func (c Category) String() string {
	switch c {
	case Weight:
		return "weight"
	case Volume:
		return "volume"
	case Length:
		return "length"
	default:
		return "unknown"
	}
}

// BaseUnit returns the canonical symbol of the category
func (c Category) BaseUnit() string {
	switch c {
	case Weight:
		return "g"
	case Volume:
		return "ml"
	case Length:
		return "cm"
	default:
		return ""
	}
}

// ParseCategory maps a category name to its Category.
// "height" is accepted as an alias of length.
func ParseCategory(name string) (Category, bool) {
	switch normalize(name) {
	case "weight", "mass":
		return Weight, true
	case "volume":
		return Volume, true
	case "length", "height":
		return Length, true
	default:
		return 0, false
	}
}

// Categories returns all categories
func Categories() []Category {
	return []Category{Weight, Volume, Length}
}

// Unit is one recognised unit symbol
type Unit struct {
	// Symbol is the canonical lower-case symbol
	Symbol string

	// Category is the family the unit belongs to
	Category Category

	// Multiplier converts one of this unit into the category base unit
	Multiplier float64
}

var tables = map[Category][]Unit{
	Weight: {
		{Symbol: "g", Category: Weight, Multiplier: 1},
		{Symbol: "kg", Category: Weight, Multiplier: 1000},
		{Symbol: "oz", Category: Weight, Multiplier: 28.3495},
		{Symbol: "lb", Category: Weight, Multiplier: 453.592},
	},
	Volume: {
		{Symbol: "ml", Category: Volume, Multiplier: 1},
		{Symbol: "cups", Category: Volume, Multiplier: 236.588},
		{Symbol: "tbsp", Category: Volume, Multiplier: 14.7868},
		{Symbol: "tsp", Category: Volume, Multiplier: 4.92892},
		{Symbol: "fl oz", Category: Volume, Multiplier: 29.5735},
	},
	Length: {
		{Symbol: "cm", Category: Length, Multiplier: 1},
		{Symbol: "m", Category: Length, Multiplier: 100},
		{Symbol: "ft", Category: Length, Multiplier: 30.48},
		{Symbol: "in", Category: Length, Multiplier: 2.54},
	},
}

// bySymbol indexes every table; symbols are unique across categories.
var bySymbol = func() map[string]Unit {
	index := make(map[string]Unit)
	for _, c := range Categories() {
		for _, u := range tables[c] {
			index[u.Symbol] = u
		}
	}
	return index
}()

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Lookup finds a unit by symbol, ignoring case and surrounding whitespace
func Lookup(symbol string) (Unit, bool) {
	u, ok := bySymbol[normalize(symbol)]
	return u, ok
}

// Symbols returns the symbols of a category in table order
func Symbols(c Category) []string {
	table := tables[c]
	out := make([]string, len(table))
	for i, u := range table {
		out[i] = u.Symbol
	}
	return out
}

func isIn(symbol string, c Category) bool {
	u, ok := Lookup(symbol)
	return ok && u.Category == c
}

// IsWeightUnit reports whether symbol is one of g, kg, oz, lb
func IsWeightUnit(symbol string) bool {
	return isIn(symbol, Weight)
}

// IsVolumeUnit reports whether symbol is one of ml, cups, tbsp, tsp, fl oz
func IsVolumeUnit(symbol string) bool {
	return isIn(symbol, Volume)
}

// IsHeightUnit reports whether symbol is one of cm, m, ft, in
func IsHeightUnit(symbol string) bool {
	return isIn(symbol, Length)
}
