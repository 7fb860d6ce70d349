package hydration

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

const timestampFormat = time.RFC3339

// DailySummary totals the logged water intake for a single day.
type DailySummary struct {
	Date    string  `json:"date"`
	TotalML float64 `json:"totalIntakeMl"`
	TotalOz float64 `json:"totalIntakeOz"`
	Entries int     `json:"entries"`
}

// Repository tracks water intake per user.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a water intake repository.
func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Log records an intake amount for the authenticated user.
func (r *Repository) Log(ctx context.Context, amountML float64, loggedAt time.Time) error {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	_, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO water_intake (user_id, amount_ml, logged_at)
		VALUES (?, ?, ?)`,
		userID, amountML, loggedAt.Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("insert water intake: %w", err)
	}

	return nil
}

// DailyIntake sums the authenticated user's intake for the given day.
func (r *Repository) DailyIntake(ctx context.Context, day time.Time) (DailySummary, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		totalML float64
		entries int
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_ml), 0), COUNT(*)
		FROM water_intake
		WHERE user_id = ? AND logged_at >= ? AND logged_at < ?`,
		userID, dayStart.Format(timestampFormat), dayEnd.Format(timestampFormat)).
		Scan(&totalML, &entries)
	if err != nil {
		return DailySummary{}, fmt.Errorf("query daily water intake: %w", err)
	}

	return DailySummary{
		Date:    dayStart.Format("2006-01-02"),
		TotalML: totalML,
		TotalOz: math.Round(totalML*ozPerML*10) / 10,
		Entries: entries,
	}, nil
}

// WeeklyIntake returns daily summaries for the 7 days ending at day, oldest
// first.
func (r *Repository) WeeklyIntake(ctx context.Context, day time.Time) ([]DailySummary, error) {
	summaries := make([]DailySummary, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		summary, err := r.DailyIntake(ctx, day.AddDate(0, 0, -offset))
		if err != nil {
			return nil, fmt.Errorf("weekly intake day -%d: %w", offset, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
