// Package output turns calculation results into reports and renders them.
package output

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"nutricalc/core/calories"
	"nutricalc/core/senior"
	"nutricalc/core/units"
)

// Kind identifies what produced a report
type Kind string

const (
	KindConversion Kind = "conversion"
	KindCalories   Kind = "calories"
)

// Report is a rendered-ready calculation outcome
type Report struct {
	// ID uniquely identifies this report
	ID string `json:"id"`

	// Kind is the calculation that produced the report
	Kind Kind `json:"kind"`

	// Timestamp is when the report was built
	Timestamp string `json:"timestamp"`

	// Lines are the computed values in display order
	Lines []Line `json:"lines"`

	// Assumptions documents silent fallbacks and policy choices
	Assumptions []string `json:"assumptions,omitempty"`
}

// Line is one computed value with its lineage
type Line struct {
	// Label is a human-readable label
	Label string `json:"label"`

	// Amount is the value rounded to the report precision
	Amount decimal.Decimal `json:"amount"`

	// Unit is the measure of Amount (e.g. "kcal/day", "lb")
	Unit string `json:"unit"`

	// Formula describes how Amount was calculated
	Formula string `json:"formula,omitempty"`
}

func newReport(kind Kind) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// add appends a line. Values that are NaN or infinite have no decimal form,
// so they are recorded as zero with an assumption naming the real value.
func (r *Report) add(label string, value float64, unit string, precision int32, formula string) {
	amount := decimal.Zero
	if math.IsNaN(value) || math.IsInf(value, 0) {
		r.Assumptions = append(r.Assumptions, fmt.Sprintf("%s is %v, not a finite number; shown as 0", label, value))
	} else {
		amount = decimal.NewFromFloat(value).Round(precision)
	}
	r.Lines = append(r.Lines, Line{
		Label:   label,
		Amount:  amount,
		Unit:    unit,
		Formula: formula,
	})
}

// Line returns the line with the given label
func (r *Report) Line(label string) (Line, bool) {
	for _, l := range r.Lines {
		if l.Label == label {
			return l, true
		}
	}
	return Line{}, false
}

// NewConversionReport describes value converted from one unit to another
func NewConversionReport(value float64, from, to string, result float64, precision int32) *Report {
	r := newReport(KindConversion)
	r.add("Input", value, from, precision, "")

	src, srcOK := units.Lookup(from)
	dst, dstOK := units.Lookup(to)

	switch {
	case !srcOK || !dstOK:
		r.add("Result", result, to, precision, "unrecognized unit treated as base unit")
		if !srcOK {
			r.Assumptions = append(r.Assumptions, fmt.Sprintf("%q is not a recognized unit; value used unchanged", from))
		}
		if !dstOK {
			r.Assumptions = append(r.Assumptions, fmt.Sprintf("%q is not a recognized unit; value used unchanged", to))
		}
	default:
		base := units.ToBaseUnit(value, from)
		r.add("Base", base, src.Category.BaseUnit(), precision, fmt.Sprintf("%g × %g", value, src.Multiplier))
		r.add("Result", result, dst.Symbol, precision, fmt.Sprintf("%g ÷ %g", base, dst.Multiplier))
		if src.Category != dst.Category {
			r.Assumptions = append(r.Assumptions,
				fmt.Sprintf("%s (%s) and %s (%s) measure different things; result is not meaningful",
					src.Symbol, src.Category, dst.Symbol, dst.Category))
		}
	}
	return r
}

// NewCalorieReport describes a calorie calculation and, when adj is not nil,
// the senior adjustment applied to its TDEE
func NewCalorieReport(p calories.Profile, res calories.Result, adj *senior.Adjustment, precision int32) *Report {
	r := newReport(KindCalories)

	bmrFormula := "10×weight + 6.25×height − 5×age"
	if res.Formula == calories.HarrisBenedict {
		bmrFormula = "66.47 + 13.75×weight + 5.003×height − 6.755×age"
		if p.Sex != calories.Male {
			bmrFormula = "655.1 + 9.563×weight + 1.850×height − 4.676×age"
		}
	} else if p.Sex == calories.Male {
		bmrFormula += " + 5"
	} else {
		bmrFormula += " − 161"
	}

	r.add("BMR", res.BMR, "kcal/day", precision, fmt.Sprintf("%s (%s)", res.Formula, bmrFormula))
	r.add("TDEE", res.TDEE, "kcal/day", precision,
		fmt.Sprintf("BMR × %g (%s)", p.Activity.Multiplier(), p.Activity))
	r.add("Weight loss", res.WeightLossCalories, "kcal/day", precision,
		fmt.Sprintf("TDEE − %g", calories.CalorieAdjustment))
	r.add("Weight gain", res.WeightGainCalories, "kcal/day", precision,
		fmt.Sprintf("TDEE + %g", calories.CalorieAdjustment))

	if adj != nil {
		for _, step := range adj.Steps {
			r.add("Adjustment: "+step.Rule, step.After, "kcal/day", precision, step.Formula())
		}
		r.add("Adjusted TDEE", adj.Calories, "kcal/day", precision, "senior policy "+adj.Version)
	}

	if p.Sex == calories.Female {
		r.Assumptions = append(r.Assumptions, "female equation used; only the label \"Male\" selects the male equation")
	}
	r.Assumptions = append(r.Assumptions, "weight-loss target has no minimum calorie floor")
	return r
}
