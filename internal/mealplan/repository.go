package mealplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = time.RFC3339
)

// Repository persists weekly meal plans per user.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a meal plan repository.
func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Save stores a new plan for the authenticated user and returns it with its
// generated identifier.
func (r *Repository) Save(ctx context.Context, plan WeeklyPlan, targets Targets) (StoredPlan, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	mealsJSON, err := json.Marshal(plan)
	if err != nil {
		return StoredPlan{}, fmt.Errorf("marshal meals: %w", err)
	}

	now := time.Now()
	stored := StoredPlan{
		ID:        uuid.NewString(),
		Meals:     plan,
		Targets:   targets,
		PlanDate:  now,
		CreatedAt: now,
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO meal_plans (id, user_id, plan_date, meals, target_calories, target_protein, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, userID, now.Format(dateFormat), string(mealsJSON),
		targets.Calories, targets.Protein, now.Format(timestampFormat))
	if err != nil {
		return StoredPlan{}, fmt.Errorf("insert meal plan: %w", err)
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "saved meal plan",
		slog.String("plan_id", stored.ID), slog.Int64("user_id", userID))

	return stored, nil
}

// Latest returns the most recently created plan for the authenticated user.
func (r *Repository) Latest(ctx context.Context) (StoredPlan, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, plan_date, meals, target_calories, target_protein, created_at
		FROM meal_plans
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, userID)

	plan, err := scanPlan(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredPlan{}, ErrNotFound
		}
		return StoredPlan{}, fmt.Errorf("query latest meal plan: %w", err)
	}

	return plan, nil
}

// History lists the authenticated user's plans, newest first.
func (r *Repository) History(ctx context.Context, limit int) (_ []StoredPlan, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, plan_date, meals, target_calories, target_protein, created_at
		FROM meal_plans
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query meal plan history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var plans []StoredPlan
	for rows.Next() {
		var plan StoredPlan
		plan, err = scanPlan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan meal plan row: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return plans, nil
}

func scanPlan(scan func(dest ...any) error) (StoredPlan, error) {
	var (
		plan         StoredPlan
		planDateStr  string
		mealsJSON    string
		createdAtStr string
	)

	err := scan(&plan.ID, &planDateStr, &mealsJSON, &plan.Targets.Calories, &plan.Targets.Protein, &createdAtStr)
	if err != nil {
		return StoredPlan{}, err
	}

	if plan.PlanDate, err = time.Parse(dateFormat, planDateStr); err != nil {
		return StoredPlan{}, fmt.Errorf("parse plan date: %w", err)
	}
	if plan.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return StoredPlan{}, fmt.Errorf("parse created at: %w", err)
	}
	if err = json.Unmarshal([]byte(mealsJSON), &plan.Meals); err != nil {
		return StoredPlan{}, fmt.Errorf("unmarshal meals: %w", err)
	}

	return plan, nil
}
