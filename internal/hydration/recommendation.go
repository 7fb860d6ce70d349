// Package hydration computes daily water intake recommendations and tracks
// logged intake per user.
package hydration

import (
	"math"
	"strings"
)

const (
	// Base need of ~33ml per kg of body weight.
	mlPerKg = 33.0
	// Roughly 550ml of additional water per hour of exercise.
	mlPerWorkoutHour = 550.0
	ozPerML          = 0.033814
	wakingHours      = 16.0
)

var activityFactors = map[string]float64{
	"sedentary": 1.0,
	"light":     1.1,
	"moderate":  1.2,
	"high":      1.3,
	"very high": 1.4,
}

var climateFactors = map[string]float64{
	"cold":     0.95,
	"moderate": 1.0,
	"hot":      1.1,
	"very hot": 1.2,
}

// Recommendation is a daily water intake target.
type Recommendation struct {
	DailyML           float64 `json:"dailyRecommendationMl"`
	DailyOz           float64 `json:"dailyRecommendationOz"`
	HourlyTargetML    float64 `json:"hourlyTargetMl"`
	WorkoutAdditionML float64 `json:"workoutAdditionalMl"`
}

// CalculateRecommendation derives a water target from body weight, scaled by
// activity level and climate, plus a per-hour allowance for workout time.
// Unknown activity or climate labels fall back to a neutral factor.
func CalculateRecommendation(weightKg float64, activityLevel string, workoutMinutes int, climate string) Recommendation {
	activityFactor, ok := activityFactors[strings.ToLower(activityLevel)]
	if !ok {
		activityFactor = 1.0
	}
	climateFactor, ok := climateFactors[strings.ToLower(climate)]
	if !ok {
		climateFactor = 1.0
	}

	var workoutAddition float64
	if workoutMinutes > 0 {
		workoutAddition = float64(workoutMinutes) / 60 * mlPerWorkoutHour
	}

	totalML := weightKg*mlPerKg*activityFactor*climateFactor + workoutAddition

	return Recommendation{
		DailyML:           math.Round(totalML),
		DailyOz:           math.Round(totalML*ozPerML*10) / 10,
		HourlyTargetML:    math.Round(totalML / wakingHours),
		WorkoutAdditionML: math.Round(workoutAddition),
	}
}
