package units

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutricalc/internal/errors"
)

const tolerance = 1e-9

func allSymbols() []string {
	var out []string
	for _, c := range Categories() {
		out = append(out, Symbols(c)...)
	}
	return out
}

func TestSymbolsAreUniqueAcrossCategories(t *testing.T) {
	seen := make(map[string]Category)
	for _, c := range Categories() {
		for _, s := range Symbols(c) {
			if prev, dup := seen[s]; dup {
				t.Fatalf("symbol %q in both %s and %s", s, prev, c)
			}
			seen[s] = c
		}
	}
	assert.Len(t, seen, 13)
}

func TestSymbolsTableOrder(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{Weight, []string{"g", "kg", "oz", "lb"}},
		{Volume, []string{"ml", "cups", "tbsp", "tsp", "fl oz"}},
		{Length, []string{"cm", "m", "ft", "in"}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Symbols(tt.category)); diff != "" {
				t.Errorf("Symbols(%s) mismatch (-want +got):\n%s", tt.category, diff)
			}
			assert.Equal(t, tt.want[0], tt.category.BaseUnit())
		})
	}
}

func TestToBaseUnit(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  float64
	}{
		{2, "kg", 2000},
		{1, "oz", 28.3495},
		{1, "lb", 453.592},
		{1, "cups", 236.588},
		{2, "tbsp", 29.5736},
		{1, "tsp", 4.92892},
		{1, "fl oz", 29.5735},
		{1.8, "m", 180},
		{6, "ft", 182.88},
		{10, "in", 25.4},
		{5, "g", 5},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToBaseUnit(tt.value, tt.unit), tolerance)
		})
	}
}

func TestUnrecognizedUnitFallsBackToIdentity(t *testing.T) {
	assert.Equal(t, 42.0, ToBaseUnit(42, "stone"))
	assert.Equal(t, 42.0, FromBaseUnit(42, "stone"))
	// the table spells it "cups"
	assert.Equal(t, 1.0, Convert(1, "cup", "ml"))
}

func TestCaseInsensitive(t *testing.T) {
	assert.True(t, IsWeightUnit("KG"))
	assert.True(t, IsVolumeUnit("Fl Oz"))
	assert.True(t, IsVolumeUnit(" TBSP "))
	assert.True(t, IsHeightUnit("In"))
	assert.InDelta(t, 2000.0, ToBaseUnit(2, "Kg"), tolerance)
}

func TestMembership(t *testing.T) {
	for _, s := range Symbols(Weight) {
		assert.True(t, IsWeightUnit(s), s)
		assert.False(t, IsVolumeUnit(s), s)
		assert.False(t, IsHeightUnit(s), s)
	}
	for _, s := range Symbols(Volume) {
		assert.True(t, IsVolumeUnit(s), s)
		assert.False(t, IsWeightUnit(s), s)
	}
	for _, s := range Symbols(Length) {
		assert.True(t, IsHeightUnit(s), s)
		assert.False(t, IsWeightUnit(s), s)
	}
	assert.False(t, IsVolumeUnit("cup"))
	assert.False(t, IsWeightUnit(""))
}

func TestIdentityLaw(t *testing.T) {
	values := []float64{0, 1, 0.1, 3.3333, 1234.5678, -7}
	for _, s := range allSymbols() {
		for _, v := range values {
			assert.Equal(t, v, Convert(v, s, s), "%v %s", v, s)
		}
	}
}

func TestRoundTripThroughBaseUnit(t *testing.T) {
	values := []float64{0.5, 1, 12.75, 250, 1e6}
	for _, c := range Categories() {
		base := c.BaseUnit()
		for _, s := range Symbols(c) {
			for _, v := range values {
				got := Convert(Convert(v, s, base), base, s)
				if math.Abs(got-v) > tolerance*math.Max(1, v) {
					t.Errorf("round trip %v %s via %s = %v", v, s, base, got)
				}
			}
		}
	}
}

func TestToAndFromBaseAreInverses(t *testing.T) {
	for _, s := range allSymbols() {
		v := 17.25
		assert.InDelta(t, v, FromBaseUnit(ToBaseUnit(v, s), s), tolerance, s)
		assert.InDelta(t, v, ToBaseUnit(FromBaseUnit(v, s), s), tolerance, s)
	}
}

func TestConvertWithinCategory(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to string
		want     float64
	}{
		{"kg to lb", 1, "kg", "lb", 1000 / 453.592},
		{"lb to oz", 1, "lb", "oz", 453.592 / 28.3495},
		{"cups to tbsp", 1, "cups", "tbsp", 236.588 / 14.7868},
		{"ft to in", 1, "ft", "in", 12},
		{"m to cm", 1.7, "m", "cm", 170},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Convert(tt.value, tt.from, tt.to), 1e-9)
		})
	}
}

func TestConvertAcrossCategoriesIsSilent(t *testing.T) {
	// 1 kg -> 1000 "base" -> interpreted as cm -> 10 m
	assert.InDelta(t, 10.0, Convert(1, "kg", "m"), tolerance)
}

func TestConvertStrict(t *testing.T) {
	got, err := ConvertStrict(2, "KG", "lb")
	require.NoError(t, err)
	assert.InDelta(t, Convert(2, "kg", "lb"), got, tolerance)

	got, err = ConvertStrict(3.5, "tsp", "TSP")
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)

	_, err = ConvertStrict(1, "cup", "ml")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeUnknownUnit))
	assert.Contains(t, err.Error(), `"cup"`)

	_, err = ConvertStrict(1, "ml", "pint")
	assert.True(t, errors.IsType(err, errors.TypeUnknownUnit))

	_, err = ConvertStrict(1, "g", "cm")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCategoryMismatch))
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"weight": Weight,
		"Mass":   Weight,
		"volume": Volume,
		"Height": Length,
		"length": Length,
	}
	for in, want := range tests {
		got, ok := ParseCategory(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseCategory("temperature")
	assert.False(t, ok)
}
