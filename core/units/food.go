package units

// FoodCategory groups foods by how they are usually measured
type FoodCategory string

const (
	FoodFruits     FoodCategory = "fruits"
	FoodVegetables FoodCategory = "vegetables"
	FoodGrains     FoodCategory = "grains"
	FoodProtein    FoodCategory = "protein"
	FoodDairy      FoodCategory = "dairy"
	FoodBeverages  FoodCategory = "beverages"
	FoodCondiments FoodCategory = "condiments"
	FoodSnacks     FoodCategory = "snacks"
	FoodOther      FoodCategory = "other"
)

// FoodCategories returns every food category
func FoodCategories() []FoodCategory {
	return []FoodCategory{
		FoodFruits, FoodVegetables, FoodGrains, FoodProtein, FoodDairy,
		FoodBeverages, FoodCondiments, FoodSnacks, FoodOther,
	}
}

// ParseFoodCategory maps a name to a FoodCategory; unknown names become FoodOther
func ParseFoodCategory(name string) FoodCategory {
	n := FoodCategory(normalize(name))
	for _, c := range FoodCategories() {
		if c == n {
			return c
		}
	}
	return FoodOther
}

// DefaultUnitFor returns the unit a new log entry starts with.
// Beverages and condiments are measured by volume, everything else by weight.
func DefaultUnitFor(c FoodCategory) string {
	switch c {
	case FoodBeverages:
		return "ml"
	case FoodCondiments:
		return "tbsp"
	default:
		return "g"
	}
}

// SuggestedUnitsFor returns the units offered for a food category, most
// common first. The first entry always equals DefaultUnitFor(c).
func SuggestedUnitsFor(c FoodCategory) []string {
	switch c {
	case FoodBeverages:
		return []string{"ml", "cups", "fl oz"}
	case FoodCondiments:
		return []string{"tbsp", "tsp", "ml"}
	default:
		return []string{"g", "oz", "kg", "lb"}
	}
}
