package units

import (
	"nutricalc/internal/errors"
)

// ToBaseUnit converts value from unit into the base unit of its category.
// Unrecognised symbols are treated as already being in the base unit.
func ToBaseUnit(value float64, unit string) float64 {
	u, ok := Lookup(unit)
	if !ok {
		return value
	}
	return value * u.Multiplier
}

// FromBaseUnit converts value from the base unit into unit.
// Unrecognised symbols are treated as the base unit.
func FromBaseUnit(value float64, unit string) float64 {
	u, ok := Lookup(unit)
	if !ok {
		return value
	}
	return value / u.Multiplier
}

// Convert routes value from one unit to another through the base unit.
//
// Neither symbol is validated: unknown symbols fall back to identity and units
// from different categories are converted numerically anyway. Use
// ConvertStrict to have those cases reported.
func Convert(value float64, from, to string) float64 {
	if normalize(from) == normalize(to) {
		return value
	}
	return FromBaseUnit(ToBaseUnit(value, from), to)
}

// ConvertStrict is Convert with explicit failures. It returns an
// UNKNOWN_UNIT error for unrecognised symbols and a CATEGORY_MISMATCH error
// when from and to belong to different categories.
func ConvertStrict(value float64, from, to string) (float64, error) {
	src, ok := Lookup(from)
	if !ok {
		return 0, errors.UnknownUnit(from)
	}
	dst, ok := Lookup(to)
	if !ok {
		return 0, errors.UnknownUnit(to)
	}
	if src.Category != dst.Category {
		return 0, errors.CategoryMismatch(src.Symbol, src.Category.String(), dst.Symbol, dst.Category.String())
	}
	if src.Symbol == dst.Symbol {
		return value, nil
	}
	return value * src.Multiplier / dst.Multiplier, nil
}
