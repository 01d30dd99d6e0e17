// Package cmd - calories command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutricalc/core/calories"
	"nutricalc/core/output"
	"nutricalc/core/senior"
	"nutricalc/core/units"
	"nutricalc/internal/config"
	"nutricalc/internal/errors"
	"nutricalc/internal/logging"
)

type caloriesOptions struct {
	weight     float64
	weightUnit string
	height     float64
	heightUnit string
	age        int
	sex        string
	activity   string
	formula    string
	conditions []string
	senior     bool
	policyPath string
}

func newCaloriesCmd(opts *rootOptions) *cobra.Command {
	co := &caloriesOptions{}

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Estimate BMR, TDEE and weight-change targets",
		Long: `Estimate basal metabolic rate and total daily energy expenditure.

The weight-loss and weight-gain targets are TDEE minus and plus 500 kcal/day.
Only the exact sex label "Male" selects the male equation.

With --senior (or calculation.senior_adjustments in the config file) or any
--condition, TDEE is also adjusted by the senior policy table.

Examples:
  nutricalc calories --weight 70 --height 170 --age 65 --activity "lightly active"
  nutricalc calories --weight 82 --height 178 --age 70 --sex Male --formula harrisBenedict
  nutricalc calories --weight 154 --weight-unit lb --height 5.6 --height-unit ft --age 78 --senior --condition Diabetes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return co.run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&co.weight, "weight", 0, "body weight")
	f.StringVar(&co.weightUnit, "weight-unit", "kg", "weight unit (g, kg, oz, lb)")
	f.Float64Var(&co.height, "height", 0, "body height")
	f.StringVar(&co.heightUnit, "height-unit", "cm", "height unit (cm, m, ft, in)")
	f.IntVar(&co.age, "age", 0, "age in years")
	f.StringVar(&co.sex, "sex", "Female", `sex label; only "Male" selects the male equation`)
	f.StringVar(&co.activity, "activity", "", "activity level (sedentary, lightly active, moderately active, very active, extra active)")
	f.StringVar(&co.formula, "formula", "", "BMR formula (harrisBenedict, mifflinStJeor)")
	f.StringArrayVar(&co.conditions, "condition", nil, "health condition, repeatable")
	f.BoolVar(&co.senior, "senior", false, "apply senior adjustments")
	f.StringVar(&co.policyPath, "policy", "", "HCL senior policy file")

	return cmd
}

func (co *caloriesOptions) profile(cfg *config.Config) (calories.Profile, calories.Formula, error) {
	if !units.IsWeightUnit(co.weightUnit) {
		return calories.Profile{}, 0, errors.Newf(errors.TypeInput, "%q is not a weight unit", co.weightUnit)
	}
	if !units.IsHeightUnit(co.heightUnit) {
		return calories.Profile{}, 0, errors.Newf(errors.TypeInput, "%q is not a height unit", co.heightUnit)
	}

	weightKg := units.Convert(co.weight, co.weightUnit, "kg")
	heightCm := units.Convert(co.height, co.heightUnit, "cm")
	if !isFinite(weightKg) || !isFinite(heightCm) {
		return calories.Profile{}, 0, errors.Input("weight and height must be finite numbers").
			WithContext("weight", co.weight).
			WithContext("height", co.height)
	}
	if !calories.ValidateInputs(weightKg, heightCm, co.age) {
		return calories.Profile{}, 0, errors.Input("weight, height and age must all be greater than zero").
			WithContext("weight_kg", weightKg).
			WithContext("height_cm", heightCm).
			WithContext("age", co.age)
	}

	activityLabel := co.activity
	if activityLabel == "" {
		activityLabel = cfg.Calculation.DefaultActivity
	}
	activity, err := calories.ParseActivityLevel(activityLabel)
	if err != nil {
		return calories.Profile{}, 0, err
	}

	formulaName := co.formula
	if formulaName == "" {
		formulaName = cfg.Calculation.DefaultFormula
	}
	formula, err := calories.ParseFormula(formulaName)
	if err != nil {
		return calories.Profile{}, 0, err
	}

	return calories.Profile{
		WeightKg: weightKg,
		HeightCm: heightCm,
		Age:      co.age,
		Sex:      calories.ParseSex(co.sex),
		Activity: activity,
	}, formula, nil
}

func (co *caloriesOptions) policy(cfg *config.Config) (*senior.Policy, error) {
	path := co.policyPath
	if path == "" {
		path = cfg.Calculation.PolicyPath
	}
	if path == "" {
		return senior.Default(), nil
	}
	return senior.Load(path)
}

func (co *caloriesOptions) run(cmd *cobra.Command, opts *rootOptions) error {
	cfg := config.Get()

	p, formula, err := co.profile(cfg)
	if err != nil {
		return err
	}

	res := calories.CalculateCalorieNeeds(p, formula)
	if !isFinite(res.BMR) || !isFinite(res.WeightGainCalories) || !isFinite(res.WeightLossCalories) {
		return errors.Input("weight, height or age is too large to estimate calories").
			WithContext("weight_kg", p.WeightKg).
			WithContext("height_cm", p.HeightCm).
			WithContext("age", p.Age)
	}

	log := logging.With(zap.String("formula", formula.String()), zap.String("activity", p.Activity.String()))
	log.Info("calorie needs calculated",
		zap.Float64("bmr", res.BMR),
		zap.Float64("tdee", res.TDEE))

	var adj *senior.Adjustment
	if co.senior || cfg.Calculation.SeniorAdjustments || len(co.conditions) > 0 {
		policy, err := co.policy(cfg)
		if err != nil {
			return err
		}
		a := policy.Apply(res.TDEE, p.Age, co.conditions)
		if !isFinite(a.Calories) {
			return errors.Newf(errors.TypePolicy, "policy %s produced a non-finite adjustment", policy.Version)
		}
		adj = &a
		log.Info("senior adjustments applied",
			zap.String("policy", policy.Version),
			zap.Int("steps", len(a.Steps)),
			zap.Float64("calories", a.Calories))
	}

	return opts.render(cmd, output.NewCalorieReport(p, res, adj, cfg.Output.Precision))
}
