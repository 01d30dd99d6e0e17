// Package calories estimates daily energy needs from body measurements.
//
// BMR comes from either the Harris-Benedict or the Mifflin-St Jeor equation,
// TDEE scales BMR by an activity multiplier, and weight-loss and weight-gain
// targets sit a fixed 500 kcal/day either side of TDEE. Every function is
// pure; inputs are not validated here, see ValidateInputs.
package calories

import (
	"strings"

	"nutricalc/internal/errors"
)

// Sex selects the sex-specific constants of the BMR equations
type Sex int

const (
	// Female is also used for any label other than "Male"
	Female Sex = iota
	Male
)

// String returns string representation
func (s Sex) String() string {
	if s == Male {
		return "Male"
	}
	return "Female"
}

// ParseSex maps a label to a Sex. Only the exact label "Male" selects Male;
// every other label, including unrecognised ones, selects Female.
func ParseSex(label string) Sex {
	if label == "Male" {
		return Male
	}
	return Female
}

// ActivityLevel is a habitual activity band
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota
	LightlyActive
	ModeratelyActive
	VeryActive
	ExtraActive
)

var activityMultipliers = [...]float64{
	Sedentary:        1.2,
	LightlyActive:    1.375,
	ModeratelyActive: 1.55,
	VeryActive:       1.725,
	ExtraActive:      1.9,
}

var activityLabels = [...]string{
	Sedentary:        "sedentary",
	LightlyActive:    "lightly active",
	ModeratelyActive: "moderately active",
	VeryActive:       "very active",
	ExtraActive:      "extra active",
}

// ActivityLevels returns all levels in ascending multiplier order
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtraActive}
}

// Multiplier returns the factor applied to BMR to get TDEE
func (a ActivityLevel) Multiplier() float64 {
	if a < Sedentary || a > ExtraActive {
		return activityMultipliers[Sedentary]
	}
	return activityMultipliers[a]
}

// String returns string representation
func (a ActivityLevel) String() string {
	if a < Sedentary || a > ExtraActive {
		return "unknown"
	}
	return activityLabels[a]
}

// squash lower-cases s and drops spaces, underscores and dashes so that
// "lightly active", "lightlyActive" and "lightly_active" compare equal.
func squash(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// ParseActivityLevel maps a label such as "lightly active", "lightlyActive"
// or "LIGHTLY_ACTIVE" to its ActivityLevel.
func ParseActivityLevel(label string) (ActivityLevel, error) {
	key := squash(label)
	for _, a := range ActivityLevels() {
		if squash(activityLabels[a]) == key {
			return a, nil
		}
	}
	return Sedentary, errors.Newf(errors.TypeInput, "unknown activity level: %q", label)
}

// Formula selects a BMR equation
type Formula int

const (
	HarrisBenedict Formula = iota
	MifflinStJeor
)

// String returns string representation
func (f Formula) String() string {
	switch f {
	case HarrisBenedict:
		return "harrisBenedict"
	case MifflinStJeor:
		return "mifflinStJeor"
	default:
		return "unknown"
	}
}

// ParseFormula maps "harrisBenedict" or "mifflinStJeor" (any case, with or
// without separators) to a Formula.
func ParseFormula(name string) (Formula, error) {
	switch squash(name) {
	case "harrisbenedict":
		return HarrisBenedict, nil
	case "mifflinstjeor":
		return MifflinStJeor, nil
	default:
		return MifflinStJeor, errors.Newf(errors.TypeInput, "unknown BMR formula: %q", name)
	}
}

// Profile holds the measurements a calculation needs
type Profile struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Sex      Sex
	Activity ActivityLevel
}

// Result holds the calorie estimates in kcal/day
type Result struct {
	Formula            Formula
	BMR                float64
	TDEE               float64
	WeightLossCalories float64
	WeightGainCalories float64
}
