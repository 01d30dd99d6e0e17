package senior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// The coefficients under test are the senior-v1 table. They are a policy
// choice; a new table version is expected to change these numbers.
func TestApplyAgeBands(t *testing.T) {
	policy := Default()

	tests := []struct {
		name string
		age  int
		want float64
	}{
		{"below first band", 64, 2000},
		{"first band boundary", 65, 1900},
		{"inside first band", 74, 1900},
		{"second band boundary", 75, 1800},
		{"second band does not stack", 90, 1800},
		{"young adult", 30, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Apply(2000, tt.age, nil)
			assert.InDelta(t, tt.want, got.Calories, delta)
			assert.Equal(t, DefaultVersion, got.Version)
		})
	}
}

func TestApplyConditionsInPolicyOrder(t *testing.T) {
	policy := Default()

	forward := policy.Apply(2000, 80, []string{"Diabetes", "Heart Disease"})
	reversed := policy.Apply(2000, 80, []string{"heart disease", "DIABETES"})

	// 2000 × 0.90 = 1800, × 0.95 = 1710, − 100 = 1610
	assert.InDelta(t, 1610.0, forward.Calories, delta)
	assert.InDelta(t, forward.Calories, reversed.Calories, delta)

	require.Len(t, forward.Steps, 3)
	assert.Equal(t, "age >= 75", forward.Steps[0].Rule)
	assert.Equal(t, "Diabetes", forward.Steps[1].Rule)
	assert.Equal(t, KindFlat, forward.Steps[2].Kind)
	assert.InDelta(t, 1710.0, forward.Steps[2].Before, delta)
	assert.InDelta(t, 1610.0, forward.Steps[2].After, delta)
	assert.InDelta(t, -390.0, forward.Delta(), delta)
}

func TestApplyIgnoresUnknownAndDuplicateConditions(t *testing.T) {
	policy := Default()

	got := policy.Apply(1500, 40, []string{"Arthritis", "High Blood Pressure", " high blood pressure "})

	require.Len(t, got.Steps, 1)
	assert.InDelta(t, 1455.0, got.Calories, delta)
}

func TestApplyWithoutRulesIsIdentity(t *testing.T) {
	got := Default().Apply(1234.5, 50, []string{})
	assert.Equal(t, 1234.5, got.Calories)
	assert.Empty(t, got.Steps)
	assert.Zero(t, got.Delta())
}

func TestApplyHasNoFloor(t *testing.T) {
	got := Default().Apply(50, 70, []string{"Heart Disease"})
	assert.Less(t, got.Calories, 0.0)
}

func TestBandOrderDoesNotMatter(t *testing.T) {
	policy := &Policy{
		Version: "test",
		AgeBands: []AgeBand{
			{MinAge: 75, Percent: -10},
			{MinAge: 65, Percent: -5},
		},
	}
	assert.InDelta(t, 900.0, policy.Apply(1000, 80, nil).Calories, delta)
	assert.InDelta(t, 950.0, policy.Apply(1000, 70, nil).Calories, delta)
}

func TestStepFormula(t *testing.T) {
	assert.Equal(t, "2000 × (1 -10%)", Step{Kind: KindPercent, Value: -10, Before: 2000}.Formula())
	assert.Equal(t, "1710 -100 kcal", Step{Kind: KindFlat, Value: -100, Before: 1710}.Formula())
}

func TestLabels(t *testing.T) {
	assert.Equal(t,
		[]string{"Diabetes", "High Blood Pressure", "Heart Disease", "Kidney Disease"},
		Default().Labels())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	*a.Conditions[0].Percent = -50
	a.AgeBands[0].Percent = -50

	b := Default()
	assert.Equal(t, -5.0, *b.Conditions[0].Percent)
	assert.Equal(t, -5.0, b.AgeBands[0].Percent)
}
