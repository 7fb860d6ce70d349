package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

// Service handles the business logic for meal planning.
type Service struct {
	generator *Generator
	repo      *Repository
	logger    *slog.Logger
}

// NewService creates a meal plan service.
func NewService(
	cat catalog.MealCatalog,
	source CandidateSource,
	rng *rand.Rand,
	db *sqlite.Database,
	logger *slog.Logger,
) *Service {
	return &Service{
		generator: NewGenerator(cat, source, rng, logger),
		repo:      NewRepository(db, logger),
		logger:    logger,
	}
}

// GeneratePlan builds a weekly plan for the authenticated user and persists it.
func (s *Service) GeneratePlan(ctx context.Context, targets Targets, prefs Preferences) (StoredPlan, error) {
	plan := s.generator.GenerateWeeklyPlan(ctx, targets, prefs)

	stored, err := s.repo.Save(ctx, plan, targets)
	if err != nil {
		return StoredPlan{}, fmt.Errorf("save meal plan: %w", err)
	}

	return stored, nil
}

// LatestPlan returns the authenticated user's most recent plan.
func (s *Service) LatestPlan(ctx context.Context) (StoredPlan, error) {
	plan, err := s.repo.Latest(ctx)
	if err != nil {
		return StoredPlan{}, fmt.Errorf("latest meal plan: %w", err)
	}
	return plan, nil
}

// PlanHistory lists the authenticated user's plans, newest first.
func (s *Service) PlanHistory(ctx context.Context, limit int) ([]StoredPlan, error) {
	plans, err := s.repo.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("meal plan history: %w", err)
	}
	return plans, nil
}

// Alternatives returns replacement candidates for a meal slot. The slot
// targets are derived from the daily targets via the proportional split.
func (s *Service) Alternatives(
	mealType string,
	targets Targets,
	prefs Preferences,
	excludeName string,
	count int,
) []catalog.Meal {
	share := slotShares[mealType]
	return s.generator.Alternatives(mealType, targets.Calories*share, targets.Protein*share, prefs, excludeName, count)
}

// Recommendations suggests meals near the per-meal share of the daily targets.
func (s *Service) Recommendations(targets Targets, prefs Preferences, count int) []catalog.Meal {
	return s.generator.Recommendations(targets.Calories, targets.Protein, prefs, count)
}

// ValidatePlan checks a plan's daily averages against the targets.
func (s *Service) ValidatePlan(plan WeeklyPlan, targets Targets) Validation {
	return Validate(plan, targets)
}
