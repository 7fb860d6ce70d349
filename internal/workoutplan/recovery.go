package workoutplan

import (
	"math"
	"strings"
	"time"
)

// UserMetrics are the physiological inputs to recovery scoring.
type UserMetrics struct {
	SleepHours      float64 `json:"sleepHours"`
	StressLevel     string  `json:"stressLevel"`
	NutritionStatus string  `json:"nutritionStatus"`
}

// WorkoutSummary describes a completed or planned workout for recovery
// estimation.
type WorkoutSummary struct {
	Intensity     string   `json:"intensity"`
	ExerciseCount int      `json:"exerciseCount"`
	ExerciseTypes []string `json:"exerciseTypes"`
}

// SleepRecommendation is part of a recovery assessment.
type SleepRecommendation struct {
	MinimumHours float64  `json:"minimumHours"`
	OptimalHours float64  `json:"optimalHours"`
	Tips         []string `json:"tips"`
}

// RecoveryAssessment bundles the recovery score with tiered recommendations.
type RecoveryAssessment struct {
	RecoveryScore       float64             `json:"recoveryScore"`
	RecommendedRestDays int                 `json:"recommendedRestDays"`
	NutritionTips       []string            `json:"nutritionTips"`
	RecoveryActivities  []string            `json:"recoveryActivities"`
	Sleep               SleepRecommendation `json:"sleepRecommendations"`
	NextWorkoutDate     time.Time           `json:"nextWorkoutDate"`
}

var intensityFactors = map[string]float64{
	"light":     0.8,
	"moderate":  0.6,
	"high":      0.4,
	"very high": 0.3,
}

var exerciseTypeFactors = map[string]float64{
	"compound":   0.4,
	"isolation":  0.7,
	"bodyweight": 0.8,
	"cardio":     0.85,
}

// CalculateRecoveryScore estimates how much recovery a workout demands, on a
// nominal 0-100 scale where lower means more recovery needed. The score is a
// multiplicative chain of intensity, volume, exercise type, and lifestyle
// factors, rounded to one decimal. It is deliberately not clamped.
//
// exerciseTypes must be non-empty.
func CalculateRecoveryScore(intensity string, exerciseCount int, exerciseTypes []string, metrics UserMetrics) float64 {
	intensityFactor, ok := intensityFactors[strings.ToLower(intensity)]
	if !ok {
		intensityFactor = 0.6
	}

	volumeFactor := math.Max(0.3, 1-float64(exerciseCount)*0.05)

	var typeSum float64
	for _, exerciseType := range exerciseTypes {
		factor, ok := exerciseTypeFactors[strings.ToLower(exerciseType)]
		if !ok {
			factor = 0.6
		}
		typeSum += factor
	}
	typeFactor := typeSum / float64(len(exerciseTypes))

	score := 100 * intensityFactor * volumeFactor * typeFactor

	if metrics.SleepHours < 7 {
		score *= 0.8
	}
	if strings.ToLower(metrics.StressLevel) == "high" {
		score *= 0.85
	}
	if strings.ToLower(metrics.NutritionStatus) == "poor" {
		score *= 0.9
	}

	return math.Round(score*10) / 10
}

// GenerateRecommendations scores the workout and selects the matching tier of
// fixed recommendation content. now anchors the next workout date.
func GenerateRecommendations(workout WorkoutSummary, metrics UserMetrics, now time.Time) RecoveryAssessment {
	intensity := workout.Intensity
	if intensity == "" {
		intensity = "moderate"
	}
	exerciseTypes := workout.ExerciseTypes
	if len(exerciseTypes) == 0 {
		exerciseTypes = []string{"compound"}
	}

	score := CalculateRecoveryScore(intensity, workout.ExerciseCount, exerciseTypes, metrics)

	assessment := RecoveryAssessment{RecoveryScore: score}
	switch {
	case score < 50:
		assessment.RecommendedRestDays = 2
		assessment.NutritionTips = []string{
			"Increase protein intake to 2g per kg body weight",
			"Focus on anti-inflammatory foods",
			"Stay well hydrated (3-4 liters of water)",
			"Consider BCAAs supplementation",
		}
		assessment.RecoveryActivities = []string{
			"Light stretching",
			"Foam rolling",
			"10-15 minutes of light walking",
			"Cold therapy (ice bath or cold shower)",
		}
		assessment.Sleep = SleepRecommendation{
			MinimumHours: 8,
			OptimalHours: 9,
			Tips: []string{
				"Avoid screens 1 hour before bed",
				"Keep room temperature cool",
				"Use blackout curtains",
				"Consider magnesium supplementation",
			},
		}
	case score < 75:
		assessment.RecommendedRestDays = 1
		assessment.NutritionTips = []string{
			"Maintain regular protein intake (1.6-1.8g per kg)",
			"Focus on complex carbohydrates",
			"Stay hydrated (2-3 liters of water)",
		}
		assessment.RecoveryActivities = []string{
			"Dynamic stretching",
			"Light mobility work",
			"20-30 minutes of walking",
			"Self-massage techniques",
		}
		assessment.Sleep = SleepRecommendation{
			MinimumHours: 7,
			OptimalHours: 8,
			Tips: []string{
				"Maintain regular sleep schedule",
				"Practice relaxation techniques",
				"Ensure dark, quiet sleeping environment",
			},
		}
	default:
		assessment.RecommendedRestDays = 0
		assessment.NutritionTips = []string{
			"Maintain balanced diet",
			"Regular hydration",
			"Consider pre-workout nutrition",
		}
		assessment.RecoveryActivities = []string{
			"Dynamic warm-up",
			"Basic mobility work",
			"Light cardio if desired",
		}
		assessment.Sleep = SleepRecommendation{
			MinimumHours: 7,
			OptimalHours: 8,
			Tips: []string{
				"Maintain regular sleep schedule",
				"Stay hydrated throughout the day",
			},
		}
	}

	assessment.NextWorkoutDate = now.AddDate(0, 0, assessment.RecommendedRestDays)
	return assessment
}

// compoundMovements are matched as substrings of exercise names when
// classifying workout intensity.
var compoundMovements = []string{
	"Squat", "Deadlift", "Bench Press", "Pull-up", "Clean", "Snatch",
	"Press", "Row", "Lunge",
}

// ClassifyIntensity derives a workout intensity tier from how many exercises
// are compound movements, scaled by fitness level.
func ClassifyIntensity(exerciseNames []string, fitnessLevel string) string {
	compoundCount := 0
	for _, name := range exerciseNames {
		for _, movement := range compoundMovements {
			if strings.Contains(name, movement) {
				compoundCount++
				break
			}
		}
	}

	switch strings.ToLower(fitnessLevel) {
	case "beginner":
		switch {
		case compoundCount >= 3:
			return "high"
		case compoundCount >= 2:
			return "moderate"
		default:
			return "light"
		}
	case "intermediate":
		switch {
		case compoundCount >= 4:
			return "very high"
		case compoundCount >= 2:
			return "high"
		default:
			return "moderate"
		}
	default:
		switch {
		case compoundCount >= 3:
			return "very high"
		case compoundCount >= 2:
			return "high"
		default:
			return "moderate"
		}
	}
}
