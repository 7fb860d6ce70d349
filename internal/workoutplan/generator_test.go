package workoutplan_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/testhelpers"
	"github.com/jkoskela/fitweek/internal/workoutplan"
)

func newTestGenerator(t *testing.T) *workoutplan.Generator {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	return workoutplan.NewGenerator(catalog.Exercises(), rand.New(rand.NewPCG(3, 5)), logger)
}

func basePreferences() workoutplan.SchedulePreferences {
	return workoutplan.SchedulePreferences{
		FitnessLevel:      catalog.LevelBeginner,
		Goals:             []string{"Build Muscle"},
		AvailableDays:     []string{"Monday", "Wednesday", "Friday"},
		Equipment:         []string{catalog.EquipmentBodyweight, catalog.EquipmentDumbbells},
		MinutesPerSession: 45,
		DayMuscleGroups: map[string][]string{
			"Monday":    {"Chest"},
			"Wednesday": {"Rest"},
			"Friday":    {"Back", "Core"},
		},
	}
}

func TestGenerateWeeklySchedule(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)

	schedule, err := generator.GenerateWeeklySchedule(context.Background(), basePreferences(), nil)
	if err != nil {
		t.Fatalf("GenerateWeeklySchedule() error = %v", err)
	}

	monday, ok := schedule["Monday"]
	if !ok {
		t.Fatal("Monday missing from schedule")
	}
	if monday.Focus != "Chest" || monday.DurationMinutes != 45 {
		t.Errorf("Monday = %+v, want focus Chest and 45 minutes", monday)
	}
	if len(monday.Exercises) == 0 {
		t.Fatal("Monday has no exercises")
	}
	for _, exercise := range monday.Exercises {
		if !strings.HasPrefix(exercise, "Upper Chest: ") {
			t.Errorf("Monday exercise %q lacks its subgroup prefix", exercise)
		}
	}

	wantRest := workoutplan.DaySchedule{
		Focus:           "Rest Day",
		DurationMinutes: 0,
		Exercises:       []string{"Rest and Recovery"},
	}
	if diff := cmp.Diff(wantRest, schedule["Wednesday"]); diff != "" {
		t.Errorf("Wednesday rest day mismatch (-want +got):\n%s", diff)
	}

	friday, ok := schedule["Friday"]
	if !ok {
		t.Fatal("Friday missing from schedule")
	}
	if friday.Focus != "Back, Core" {
		t.Errorf("Friday focus = %q, want %q", friday.Focus, "Back, Core")
	}
	for _, exercise := range friday.Exercises {
		if !strings.HasPrefix(exercise, "Lats: ") && !strings.HasPrefix(exercise, "Upper Abs: ") {
			t.Errorf("Friday exercise %q lacks a Back/Core subgroup prefix", exercise)
		}
	}
}

func TestGenerateWeeklyScheduleEmptyInputs(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)

	tests := []struct {
		name   string
		mutate func(*workoutplan.SchedulePreferences)
	}{
		{name: "no days", mutate: func(p *workoutplan.SchedulePreferences) { p.AvailableDays = nil }},
		{name: "no muscle groups", mutate: func(p *workoutplan.SchedulePreferences) { p.DayMuscleGroups = nil }},
		{name: "no equipment", mutate: func(p *workoutplan.SchedulePreferences) { p.Equipment = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prefs := basePreferences()
			tt.mutate(&prefs)

			schedule, err := generator.GenerateWeeklySchedule(context.Background(), prefs, nil)
			if !errors.Is(err, workoutplan.ErrNoWorkouts) {
				t.Errorf("error = %v, want ErrNoWorkouts", err)
			}
			if len(schedule) != 0 {
				t.Errorf("got %d days, want empty schedule", len(schedule))
			}
		})
	}
}

func TestGenerateWeeklyScheduleLevelFallback(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)
	prefs := basePreferences()
	// The legs subgroups carry no Advanced entries, so selection falls back to
	// Intermediate with annotated labels.
	prefs.FitnessLevel = catalog.LevelAdvanced
	prefs.AvailableDays = []string{"Monday"}
	prefs.DayMuscleGroups = map[string][]string{"Monday": {"Legs"}}

	schedule, err := generator.GenerateWeeklySchedule(context.Background(), prefs, nil)
	if err != nil {
		t.Fatalf("GenerateWeeklySchedule() error = %v", err)
	}

	monday, ok := schedule["Monday"]
	if !ok {
		t.Fatal("Monday missing from schedule")
	}
	for _, exercise := range monday.Exercises {
		if !strings.HasPrefix(exercise, "Quadriceps (Intermediate): ") {
			t.Errorf("exercise %q lacks the fallback level annotation", exercise)
		}
	}
}

func TestGenerateWeeklyScheduleOmitsUnfillableDays(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)
	prefs := basePreferences()
	// Back only has Beginner entries and its fallback level (Intermediate) has
	// none either, so Monday cannot be filled for an Advanced user.
	prefs.FitnessLevel = catalog.LevelAdvanced
	prefs.AvailableDays = []string{"Monday", "Tuesday"}
	prefs.DayMuscleGroups = map[string][]string{
		"Monday":  {"Back"},
		"Tuesday": {"Chest"},
	}

	schedule, err := generator.GenerateWeeklySchedule(context.Background(), prefs, nil)
	if err != nil {
		t.Fatalf("GenerateWeeklySchedule() error = %v", err)
	}

	if _, ok := schedule["Monday"]; ok {
		t.Error("Monday present despite having no selectable exercises")
	}
	if _, ok := schedule["Tuesday"]; !ok {
		t.Error("Tuesday missing from schedule")
	}
}

func TestGenerateWeeklyScheduleAllDaysFail(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)
	prefs := basePreferences()
	prefs.FitnessLevel = catalog.LevelAdvanced
	prefs.AvailableDays = []string{"Monday"}
	prefs.DayMuscleGroups = map[string][]string{"Monday": {"Back"}}

	schedule, err := generator.GenerateWeeklySchedule(context.Background(), prefs, nil)
	if !errors.Is(err, workoutplan.ErrNoWorkouts) {
		t.Errorf("error = %v, want ErrNoWorkouts", err)
	}
	if len(schedule) != 0 {
		t.Errorf("got %d days, want empty schedule", len(schedule))
	}
}

func TestGenerateWeeklyScheduleSharedTrackerRotates(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t)
	prefs := basePreferences()
	prefs.AvailableDays = []string{"Monday"}
	prefs.DayMuscleGroups = map[string][]string{"Monday": {"Chest"}}

	tracker := workoutplan.NewTracker()
	first, err := generator.GenerateWeeklySchedule(context.Background(), prefs, tracker)
	if err != nil {
		t.Fatalf("first generation: %v", err)
	}
	second, err := generator.GenerateWeeklySchedule(context.Background(), prefs, tracker)
	if err != nil {
		t.Fatalf("second generation: %v", err)
	}

	// The beginner chest pool is large enough that two rotations of two picks
	// cannot overlap.
	seen := make(map[string]bool)
	for _, exercise := range first["Monday"].Exercises {
		seen[exercise] = true
	}
	for _, exercise := range second["Monday"].Exercises {
		if seen[exercise] {
			t.Errorf("%q repeated across consecutive generations sharing a tracker", exercise)
		}
	}
}
