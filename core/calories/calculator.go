package calories

import "nutricalc/core/senior"

// CalorieAdjustment is the daily deficit or surplus applied to TDEE for the
// weight-loss and weight-gain targets, roughly 0.45 kg per week.
const CalorieAdjustment = 500.0

// BMRHarrisBenedict uses the revised Harris-Benedict equation
func BMRHarrisBenedict(weightKg, heightCm float64, age int, sex Sex) float64 {
	if sex == Male {
		return 66.47 + 13.75*weightKg + 5.003*heightCm - 6.755*float64(age)
	}
	return 655.1 + 9.563*weightKg + 1.850*heightCm - 4.676*float64(age)
}

// BMRMifflinStJeor uses the Mifflin-St Jeor equation
func BMRMifflinStJeor(weightKg, heightCm float64, age int, sex Sex) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// BMR dispatches to the equation selected by formula
func BMR(formula Formula, weightKg, heightCm float64, age int, sex Sex) float64 {
	if formula == HarrisBenedict {
		return BMRHarrisBenedict(weightKg, heightCm, age, sex)
	}
	return BMRMifflinStJeor(weightKg, heightCm, age, sex)
}

// TDEE scales bmr by the activity multiplier
func TDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}

// CalculateCalorieNeeds computes BMR, TDEE and the loss and gain targets.
// No physiological floor is applied to the loss target.
func CalculateCalorieNeeds(p Profile, formula Formula) Result {
	bmr := BMR(formula, p.WeightKg, p.HeightCm, p.Age, p.Sex)
	tdee := TDEE(bmr, p.Activity)
	return Result{
		Formula:            formula,
		BMR:                bmr,
		TDEE:               tdee,
		WeightLossCalories: tdee - CalorieAdjustment,
		WeightGainCalories: tdee + CalorieAdjustment,
	}
}

// ValidateInputs reports whether weight, height and age are all positive.
// Upper bounds are not checked.
func ValidateInputs(weightKg, heightCm float64, age int) bool {
	return weightKg > 0 && heightCm > 0 && age > 0
}

// ApplySeniorAdjustments adjusts baseCalories with the built-in senior policy.
// See senior.Default for the rule table and the order rules apply in.
func ApplySeniorAdjustments(baseCalories float64, age int, healthConditions []string) float64 {
	return senior.Default().Apply(baseCalories, age, healthConditions).Calories
}
