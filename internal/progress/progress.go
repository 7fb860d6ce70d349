// Package progress records body weight and intake entries and summarises
// trends over a trailing window.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/sqlite"
)

const dateFormat = "2006-01-02"

// DefaultWindowDays is the trailing window used for summaries.
const DefaultWindowDays = 30

// Entry is one logged progress data point.
type Entry struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	WeightKg float64 `json:"currentWeight"`
	Calories float64 `json:"caloriesConsumed"`
	Protein  float64 `json:"proteinConsumed"`
	Notes    string  `json:"notes,omitempty"`
}

// Summary aggregates a series of entries. All values are rounded to one
// decimal; an empty series yields zeros.
type Summary struct {
	WeightChange float64 `json:"weightChange"`
	AvgCalories  float64 `json:"avgCalories"`
	AvgProtein   float64 `json:"avgProtein"`
}

// Summarize computes the weight delta between the oldest and newest entry and
// the average intake across all entries. Entries must be ordered by date
// ascending.
func Summarize(entries []Entry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	var totalCalories, totalProtein float64
	for _, entry := range entries {
		totalCalories += entry.Calories
		totalProtein += entry.Protein
	}
	count := float64(len(entries))

	return Summary{
		WeightChange: round1(entries[len(entries)-1].WeightKg - entries[0].WeightKg),
		AvgCalories:  round1(totalCalories / count),
		AvgProtein:   round1(totalProtein / count),
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Repository persists progress entries per user.
type Repository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// NewRepository creates a progress repository.
func NewRepository(db *sqlite.Database, logger *slog.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Add records a progress entry for the authenticated user.
func (r *Repository) Add(ctx context.Context, entry Entry) (Entry, error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	if entry.Date == "" {
		entry.Date = time.Now().Format(dateFormat)
	}

	res, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO progress_entries (user_id, entry_date, current_weight, calories_consumed, protein_consumed, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		userID, entry.Date, entry.WeightKg, entry.Calories, entry.Protein, entry.Notes)
	if err != nil {
		return Entry{}, fmt.Errorf("insert progress entry: %w", err)
	}

	if entry.ID, err = res.LastInsertId(); err != nil {
		return Entry{}, fmt.Errorf("progress entry id: %w", err)
	}

	return entry, nil
}

// ListSince returns the authenticated user's entries from the given date
// onwards, ordered by date ascending.
func (r *Repository) ListSince(ctx context.Context, since time.Time) (_ []Entry, err error) {
	userID := contexthelpers.AuthenticatedUserID(ctx)

	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, entry_date, current_weight, calories_consumed, protein_consumed, COALESCE(notes, '')
		FROM progress_entries
		WHERE user_id = ? AND entry_date >= ?
		ORDER BY entry_date ASC, id ASC`,
		userID, since.Format(dateFormat))
	if err != nil {
		return nil, fmt.Errorf("query progress entries: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close rows: %w", closeErr))
		}
	}()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err = rows.Scan(&entry.ID, &entry.Date, &entry.WeightKg, &entry.Calories, &entry.Protein, &entry.Notes); err != nil {
			return nil, fmt.Errorf("scan progress entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return entries, nil
}

// WindowSummary summarises the trailing windowDays of entries.
func (r *Repository) WindowSummary(ctx context.Context, windowDays int) (Summary, []Entry, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	entries, err := r.ListSince(ctx, since)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("window summary: %w", err)
	}

	return Summarize(entries), entries, nil
}
