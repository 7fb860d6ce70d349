package workoutplan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

// Service handles the business logic for workout scheduling and recovery.
type Service struct {
	generator *Generator
	repo      *Repository
	logger    *slog.Logger
}

// NewService creates a workout schedule service.
func NewService(library catalog.ExerciseLibrary, rng *rand.Rand, db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{
		generator: NewGenerator(library, rng, logger),
		repo:      NewRepository(db, logger),
		logger:    logger,
	}
}

// GenerateSchedule builds a weekly schedule for the authenticated user and
// persists it. A fresh rotation tracker is used per call; rotation state does
// not survive across requests.
func (s *Service) GenerateSchedule(ctx context.Context, prefs SchedulePreferences) (StoredSchedule, error) {
	schedule, err := s.generator.GenerateWeeklySchedule(ctx, prefs, nil)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("generate schedule: %w", err)
	}

	stored, err := s.repo.Save(ctx, schedule, prefs, false)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("save schedule: %w", err)
	}

	return stored, nil
}

// SaveCustomSchedule persists a user-edited schedule as-is.
func (s *Service) SaveCustomSchedule(
	ctx context.Context,
	schedule WeeklySchedule,
	prefs SchedulePreferences,
) (StoredSchedule, error) {
	if len(schedule) == 0 {
		return StoredSchedule{}, fmt.Errorf("empty custom schedule: %w", ErrNoWorkouts)
	}

	stored, err := s.repo.Save(ctx, schedule, prefs, true)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("save custom schedule: %w", err)
	}

	return stored, nil
}

// LatestSchedule returns the authenticated user's most recent schedule.
func (s *Service) LatestSchedule(ctx context.Context) (StoredSchedule, error) {
	stored, err := s.repo.Latest(ctx)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("latest schedule: %w", err)
	}
	return stored, nil
}

// ScheduleHistory lists the authenticated user's schedules, newest first.
func (s *Service) ScheduleHistory(ctx context.Context, limit int) ([]StoredSchedule, error) {
	schedules, err := s.repo.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("schedule history: %w", err)
	}
	return schedules, nil
}

// AssessRecovery scores a workout and returns the tiered recommendation
// bundle. When the summary omits an intensity but names exercises, the
// intensity is classified from the exercise names.
func (s *Service) AssessRecovery(
	workout WorkoutSummary,
	exerciseNames []string,
	fitnessLevel string,
	metrics UserMetrics,
) RecoveryAssessment {
	if workout.Intensity == "" && len(exerciseNames) > 0 {
		workout.Intensity = ClassifyIntensity(exerciseNames, fitnessLevel)
	}
	if workout.ExerciseCount == 0 {
		workout.ExerciseCount = len(exerciseNames)
	}
	return GenerateRecommendations(workout, metrics, time.Now())
}
