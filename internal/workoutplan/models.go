// Package workoutplan generates weekly workout schedules from the exercise
// library, estimates recovery need, and persists schedules per user.
package workoutplan

import (
	"time"

	"github.com/jkoskela/fitweek/internal/errors"
)

// ErrNoWorkouts is returned when no day of the requested week could be filled,
// including when required preference inputs are empty.
var ErrNoWorkouts = errors.NewSentinel("no workouts could be generated")

// ErrNotFound is returned when a user has no stored workout schedule.
var ErrNotFound = errors.NewSentinel("workout schedule not found")

// SchedulePreferences are the inputs to schedule generation.
type SchedulePreferences struct {
	FitnessLevel      string              `json:"fitnessLevel"`
	Goals             []string            `json:"goals"`
	AvailableDays     []string            `json:"availableDays"`
	Equipment         []string            `json:"equipment"`
	MinutesPerSession int                 `json:"minutesPerSession"`
	DayMuscleGroups   map[string][]string `json:"dayMuscleGroups"`
}

// DaySchedule is the plan for a single day.
type DaySchedule struct {
	Focus           string   `json:"focus"`
	DurationMinutes int      `json:"duration"`
	Exercises       []string `json:"exercises"`
}

// WeeklySchedule maps day names to their schedules. Days that could not be
// filled are absent.
type WeeklySchedule map[string]DaySchedule

// UsedExercisesTracker remembers which exercises were recently selected per
// "<muscleGroup>-<subgroup>" key, so successive selections rotate through the
// pool before repeating. The caller owns the tracker and may reuse it across
// generation calls to preserve rotation continuity, or discard it to reset.
// It is not safe for concurrent use.
type UsedExercisesTracker map[string]map[string]bool

// NewTracker creates an empty tracker.
func NewTracker() UsedExercisesTracker {
	return make(UsedExercisesTracker)
}

// setFor returns the used set for a key, inserting an empty set if absent.
func (t UsedExercisesTracker) setFor(key string) map[string]bool {
	used, ok := t[key]
	if !ok {
		used = make(map[string]bool)
		t[key] = used
	}
	return used
}

// StoredSchedule is a persisted weekly schedule with its generation inputs.
type StoredSchedule struct {
	ID           string              `json:"id"`
	Schedule     WeeklySchedule      `json:"schedule"`
	Preferences  SchedulePreferences `json:"preferences"`
	IsCustom     bool                `json:"isCustom"`
	ScheduleDate time.Time           `json:"scheduleDate"`
	CreatedAt    time.Time           `json:"createdAt"`
}
