package workoutplan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"github.com/jkoskela/fitweek/internal/catalog"
)

const exercisesPerSubgroup = 2

// Generator builds weekly workout schedules from the exercise library. The
// random source is injected so schedules are reproducible in tests.
type Generator struct {
	library catalog.ExerciseLibrary
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewGenerator creates a workout schedule generator.
func NewGenerator(library catalog.ExerciseLibrary, rng *rand.Rand, logger *slog.Logger) *Generator {
	return &Generator{
		library: library,
		rng:     rng,
		logger:  logger,
	}
}

// GenerateWeeklySchedule builds a schedule for the days listed in the
// preferences. tracker may be nil for a fresh rotation; passing the tracker
// from a previous call continues its rotation.
//
// Days whose muscle groups yield no exercises are omitted. The call fails with
// ErrNoWorkouts only when required inputs are empty or no day at all could be
// filled.
func (g *Generator) GenerateWeeklySchedule(
	ctx context.Context,
	prefs SchedulePreferences,
	tracker UsedExercisesTracker,
) (WeeklySchedule, error) {
	if len(prefs.AvailableDays) == 0 || len(prefs.DayMuscleGroups) == 0 || len(prefs.Equipment) == 0 {
		return WeeklySchedule{}, fmt.Errorf("incomplete schedule preferences: %w", ErrNoWorkouts)
	}

	if tracker == nil {
		tracker = NewTracker()
	}

	schedule := make(WeeklySchedule)
	for _, day := range prefs.AvailableDays {
		muscleGroups := prefs.DayMuscleGroups[day]
		if len(muscleGroups) == 0 {
			g.logger.LogAttrs(ctx, slog.LevelWarn, "no muscle groups assigned to day", slog.String("day", day))
			continue
		}

		if slices.Contains(muscleGroups, "Rest") {
			schedule[day] = restDaySchedule()
			continue
		}

		var exercises []string
		for _, muscleGroup := range muscleGroups {
			exercises = append(exercises, g.selectForMuscleGroup(ctx, muscleGroup, prefs, tracker)...)
		}

		if len(exercises) == 0 {
			g.logger.LogAttrs(ctx, slog.LevelWarn, "no exercises found for day",
				slog.String("day", day), slog.Any("muscle_groups", muscleGroups))
			continue
		}

		schedule[day] = DaySchedule{
			Focus:           strings.Join(muscleGroups, ", "),
			DurationMinutes: prefs.MinutesPerSession,
			Exercises:       exercises,
		}
	}

	if len(schedule) == 0 {
		return WeeklySchedule{}, fmt.Errorf("no day produced a workout: %w", ErrNoWorkouts)
	}

	return schedule, nil
}

func restDaySchedule() DaySchedule {
	return DaySchedule{
		Focus:           "Rest Day",
		DurationMinutes: 0,
		Exercises:       []string{"Rest and Recovery"},
	}
}

// selectForMuscleGroup picks exercises for every subgroup of a muscle group at
// the preferred fitness level. When the whole group comes up empty, a single
// fallback pass runs at an alternate level with level-annotated labels.
func (g *Generator) selectForMuscleGroup(
	ctx context.Context,
	muscleGroup string,
	prefs SchedulePreferences,
	tracker UsedExercisesTracker,
) []string {
	subgroups, ok := g.library[muscleGroup]
	if !ok {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "muscle group not in library", slog.String("muscle_group", muscleGroup))
		return nil
	}

	subgroupNames := make([]string, 0, len(subgroups))
	for name := range subgroups {
		subgroupNames = append(subgroupNames, name)
	}
	sort.Strings(subgroupNames)

	var selected []string
	for _, subgroup := range subgroupNames {
		used := tracker.setFor(muscleGroup + "-" + subgroup)
		levelSets, ok := subgroups[subgroup][prefs.FitnessLevel]
		if !ok {
			continue
		}
		for _, name := range g.selectForSubgroup(levelSets, prefs.Equipment, used) {
			selected = append(selected, subgroup+": "+name)
		}
	}

	if len(selected) == 0 {
		alternateLevel := catalog.LevelIntermediate
		if prefs.FitnessLevel == catalog.LevelIntermediate {
			alternateLevel = catalog.LevelBeginner
		}
		g.logger.LogAttrs(ctx, slog.LevelInfo, "falling back to alternate fitness level",
			slog.String("muscle_group", muscleGroup),
			slog.String("level", prefs.FitnessLevel),
			slog.String("alternate_level", alternateLevel))

		for _, subgroup := range subgroupNames {
			used := tracker.setFor(muscleGroup + "-" + subgroup)
			levelSets, ok := subgroups[subgroup][alternateLevel]
			if !ok {
				continue
			}
			for _, name := range g.selectForSubgroup(levelSets, prefs.Equipment, used) {
				selected = append(selected, fmt.Sprintf("%s (%s): %s", subgroup, alternateLevel, name))
			}
		}
	}

	return selected
}

// selectForSubgroup unions the exercise lists of the requested equipment
// categories, rotates past recently used names, and samples without
// replacement. The used set resets once the whole pool has been consumed.
func (g *Generator) selectForSubgroup(
	levelSets catalog.EquipmentSets,
	equipment []string,
	used map[string]bool,
) []string {
	var pool []string
	seen := make(map[string]bool)
	for _, category := range equipment {
		for _, name := range levelSets[category] {
			if !seen[name] {
				seen[name] = true
				pool = append(pool, name)
			}
		}
	}
	if len(pool) == 0 {
		return nil
	}

	var unused []string
	for _, name := range pool {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	if len(unused) == 0 {
		clear(used)
		unused = pool
	}

	count := exercisesPerSubgroup
	if count > len(unused) {
		count = len(unused)
	}

	selected := make([]string, 0, count)
	for _, idx := range g.rng.Perm(len(unused))[:count] {
		selected = append(selected, unused[idx])
		used[unused[idx]] = true
	}
	return selected
}
