// Package senior adjusts calorie estimates for older adults and common
// chronic conditions.
//
// The coefficients are a versioned policy table, not physiological law. A
// table is applied in one fixed order:
//
//  1. the single highest age band whose MinAge is at or below the age
//     (bands do not stack);
//  2. condition rules in declaration order, each at most once, when the
//     condition set contains the rule label (case-insensitive).
//
// Percent rules scale the running value, flat rules add to it. No minimum
// calorie floor is applied.
package senior

import (
	"fmt"
	"strings"
)

// DefaultVersion identifies the built-in table
const DefaultVersion = "senior-v1"

// AgeBand reduces calories from MinAge upwards
type AgeBand struct {
	// MinAge is the first age the band applies to
	MinAge int

	// Percent is the signed change, -5 means five percent fewer calories
	Percent float64
}

// ConditionRule adjusts calories when a health condition is present.
// Exactly one of Percent and Flat is set.
type ConditionRule struct {
	// Label matches a condition name, ignoring case
	Label string

	// Percent is a signed percentage change
	Percent *float64

	// Flat is a signed kcal/day change
	Flat *float64
}

// Policy is a versioned adjustment table
type Policy struct {
	Version    string
	AgeBands   []AgeBand
	Conditions []ConditionRule
}

func ptr(v float64) *float64 {
	return &v
}

// Default returns a fresh copy of the built-in table
func Default() *Policy {
	return &Policy{
		Version: DefaultVersion,
		AgeBands: []AgeBand{
			{MinAge: 65, Percent: -5},
			{MinAge: 75, Percent: -10},
		},
		Conditions: []ConditionRule{
			{Label: "Diabetes", Percent: ptr(-5)},
			{Label: "High Blood Pressure", Percent: ptr(-3)},
			{Label: "Heart Disease", Flat: ptr(-100)},
			{Label: "Kidney Disease", Percent: ptr(-5)},
		},
	}
}

// StepKind tells how a step changed the running value
type StepKind string

const (
	KindPercent StepKind = "percent"
	KindFlat    StepKind = "flat"
)

// Step records one applied rule
type Step struct {
	Rule   string
	Kind   StepKind
	Value  float64
	Before float64
	After  float64
}

// Formula describes the step arithmetic
func (s Step) Formula() string {
	if s.Kind == KindPercent {
		return fmt.Sprintf("%g × (1 %+g%%)", s.Before, s.Value)
	}
	return fmt.Sprintf("%g %+g kcal", s.Before, s.Value)
}

// Adjustment is the outcome of applying a policy
type Adjustment struct {
	Version  string
	Base     float64
	Calories float64
	Steps    []Step
}

// Delta is the total change from the base value
func (a Adjustment) Delta() float64 {
	return a.Calories - a.Base
}

func (a *Adjustment) apply(rule string, kind StepKind, value float64) {
	before := a.Calories
	after := before + value
	if kind == KindPercent {
		after = before * (1 + value/100)
	}
	a.Calories = after
	a.Steps = append(a.Steps, Step{Rule: rule, Kind: kind, Value: value, Before: before, After: after})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// bandFor returns the highest band that applies to age
func (p *Policy) bandFor(age int) (AgeBand, bool) {
	var best AgeBand
	found := false
	for _, b := range p.AgeBands {
		if age >= b.MinAge && (!found || b.MinAge > best.MinAge) {
			best = b
			found = true
		}
	}
	return best, found
}

// Apply adjusts base for age and conditions
func (p *Policy) Apply(base float64, age int, conditions []string) Adjustment {
	adj := Adjustment{Version: p.Version, Base: base, Calories: base}

	if band, ok := p.bandFor(age); ok {
		adj.apply(fmt.Sprintf("age >= %d", band.MinAge), KindPercent, band.Percent)
	}

	present := make(map[string]bool, len(conditions))
	for _, c := range conditions {
		present[normalize(c)] = true
	}

	for _, rule := range p.Conditions {
		if !present[normalize(rule.Label)] {
			continue
		}
		if rule.Percent != nil {
			adj.apply(rule.Label, KindPercent, *rule.Percent)
		} else if rule.Flat != nil {
			adj.apply(rule.Label, KindFlat, *rule.Flat)
		}
	}

	return adj
}

// Labels returns the condition labels the policy knows, in declaration order
func (p *Policy) Labels() []string {
	out := make([]string, len(p.Conditions))
	for i, c := range p.Conditions {
		out[i] = c.Label
	}
	return out
}
