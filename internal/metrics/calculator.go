// Package metrics computes the nutritional targets that drive plan generation.
package metrics

// Goal describes what the user wants to achieve with their plan.
type Goal string

const (
	GoalGainMuscle Goal = "Gain Muscle"
	GoalLoseWeight Goal = "Lose Weight"
	GoalMaintain   Goal = "Maintain"
)

// Protein targets in grams per kilogram of body weight.
const (
	proteinPerKgGain     = 2.2
	proteinPerKgLoss     = 2.0
	proteinPerKgMaintain = 1.8
)

// CalculateBMR computes the Basal Metabolic Rate using the Mifflin-St Jeor
// equation. Inputs are assumed positive; the caller validates them.
func CalculateBMR(weightKg, heightCm float64, ageYears int, sex string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == "Male" {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE computes the Total Daily Energy Expenditure by scaling the BMR
// with the activity factor for the user's activity level.
func CalculateTDEE(bmr, activityFactor float64) float64 {
	return bmr * activityFactor
}

// CalculateProteinTarget computes daily protein needs in grams based on body
// weight and goal.
func CalculateProteinTarget(weightKg float64, goal Goal) float64 {
	switch goal {
	case GoalGainMuscle:
		return weightKg * proteinPerKgGain
	case GoalLoseWeight:
		return weightKg * proteinPerKgLoss
	default:
		return weightKg * proteinPerKgMaintain
	}
}

// ActivityFactor maps an activity level to its TDEE multiplier. Unknown levels
// fall back to sedentary.
func ActivityFactor(level string) float64 {
	switch level {
	case "Sedentary":
		return 1.2
	case "Lightly Active":
		return 1.375
	case "Moderately Active":
		return 1.55
	case "Very Active":
		return 1.725
	case "Extremely Active":
		return 1.9
	default:
		return 1.2
	}
}
