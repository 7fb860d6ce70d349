// Package mealplan builds weekly meal plans against daily nutrition targets
// and persists them per user.
package mealplan

import (
	"time"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/errors"
)

// ErrNotFound is returned when a user has no stored meal plan.
var ErrNotFound = errors.NewSentinel("meal plan not found")

// Targets are the daily nutrition goals a plan is generated against.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
}

// Preferences narrow the candidate meals during generation.
//
// Restrictions lists diet tags to avoid; the single value "None" disables
// restriction filtering. Cuisines may contain the wildcard "Any".
type Preferences struct {
	Restrictions []string `json:"restrictions"`
	Cuisines     []string `json:"cuisines"`
}

// DayPlan assigns one meal to each meal type of a single day.
type DayPlan map[string]catalog.Meal

// WeeklyPlan maps day names (Monday through Sunday) to their day plans.
type WeeklyPlan map[string]DayPlan

// Validation reports how close a plan's daily averages come to the targets.
type Validation struct {
	Valid           bool    `json:"valid"`
	AverageCalories float64 `json:"averageCalories"`
	AverageProtein  float64 `json:"averageProtein"`
	CalorieDelta    float64 `json:"calorieDelta"`
	ProteinDelta    float64 `json:"proteinDelta"`
}

// StoredPlan is a persisted weekly plan together with its generation targets.
type StoredPlan struct {
	ID        string     `json:"id"`
	Meals     WeeklyPlan `json:"meals"`
	Targets   Targets    `json:"targets"`
	PlanDate  time.Time  `json:"planDate"`
	CreatedAt time.Time  `json:"createdAt"`
}
