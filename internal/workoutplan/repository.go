package workoutplan

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

// Repository persists weekly workout schedules per user.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a workout schedule repository.
func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Save stores a schedule for the authenticated user. isCustom marks schedules
// the user edited by hand rather than generated ones.
func (r *Repository) Save(
	ctx context.Context,
	schedule WeeklySchedule,
	prefs SchedulePreferences,
	isCustom bool,
) (StoredSchedule, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("marshal schedule: %w", err)
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("marshal preferences: %w", err)
	}

	now := time.Now()
	stored := StoredSchedule{
		ID:           uuid.NewString(),
		Schedule:     schedule,
		Preferences:  prefs,
		IsCustom:     isCustom,
		ScheduleDate: now,
		CreatedAt:    now,
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workout_schedules (id, user_id, schedule_date, schedule, preferences, is_custom, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stored.ID, userID, now.Format(dateFormat), string(scheduleJSON), string(prefsJSON),
		isCustom, now.Format(timestampFormat))
	if err != nil {
		return StoredSchedule{}, fmt.Errorf("insert workout schedule: %w", err)
	}

	r.logger.LogAttrs(ctx, slog.LevelInfo, "saved workout schedule",
		slog.String("schedule_id", stored.ID), slog.Int64("user_id", userID), slog.Bool("is_custom", isCustom))

	return stored, nil
}

// Latest returns the most recently created schedule for the authenticated user.
func (r *Repository) Latest(ctx context.Context) (StoredSchedule, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	row := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, schedule_date, schedule, preferences, is_custom, created_at
		FROM workout_schedules
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, userID)

	schedule, err := scanSchedule(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredSchedule{}, ErrNotFound
		}
		return StoredSchedule{}, fmt.Errorf("query latest workout schedule: %w", err)
	}

	return schedule, nil
}

// History lists the authenticated user's schedules, newest first.
func (r *Repository) History(ctx context.Context, limit int) (_ []StoredSchedule, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, schedule_date, schedule, preferences, is_custom, created_at
		FROM workout_schedules
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query workout schedule history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var schedules []StoredSchedule
	for rows.Next() {
		var schedule StoredSchedule
		schedule, err = scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan workout schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return schedules, nil
}

func scanSchedule(scan func(dest ...any) error) (StoredSchedule, error) {
	var (
		stored          StoredSchedule
		scheduleDateStr string
		scheduleJSON    string
		prefsJSON       string
		createdAtStr    string
	)

	err := scan(&stored.ID, &scheduleDateStr, &scheduleJSON, &prefsJSON, &stored.IsCustom, &createdAtStr)
	if err != nil {
		return StoredSchedule{}, err
	}

	if stored.ScheduleDate, err = time.Parse(dateFormat, scheduleDateStr); err != nil {
		return StoredSchedule{}, fmt.Errorf("parse schedule date: %w", err)
	}
	if stored.CreatedAt, err = time.Parse(timestampFormat, createdAtStr); err != nil {
		return StoredSchedule{}, fmt.Errorf("parse created at: %w", err)
	}
	if err = json.Unmarshal([]byte(scheduleJSON), &stored.Schedule); err != nil {
		return StoredSchedule{}, fmt.Errorf("unmarshal schedule: %w", err)
	}
	if err = json.Unmarshal([]byte(prefsJSON), &stored.Preferences); err != nil {
		return StoredSchedule{}, fmt.Errorf("unmarshal preferences: %w", err)
	}

	return stored, nil
}
