package mealplan

import "math"

// Validation windows for the daily averages of a whole plan. Wider than the
// per-slot tolerances since slot deviations partially cancel out over a day.
const (
	planCalorieTolerance = 300.0
	planProteinTolerance = 20.0
)

// Validate compares a plan's average daily intake against the targets.
// An empty plan is never valid.
func Validate(plan WeeklyPlan, targets Targets) Validation {
	if len(plan) == 0 {
		return Validation{}
	}

	var totalCalories, totalProtein float64
	for _, dayPlan := range plan {
		for _, meal := range dayPlan {
			totalCalories += meal.Calories
			totalProtein += meal.Protein
		}
	}

	days := float64(len(plan))
	validation := Validation{
		AverageCalories: totalCalories / days,
		AverageProtein:  totalProtein / days,
	}
	validation.CalorieDelta = validation.AverageCalories - targets.Calories
	validation.ProteinDelta = validation.AverageProtein - targets.Protein
	validation.Valid = math.Abs(validation.CalorieDelta) < planCalorieTolerance &&
		math.Abs(validation.ProteinDelta) < planProteinTolerance

	return validation
}
