package hydration_test

import (
	"context"
	"testing"
	"time"

	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/hydration"
	"github.com/jkoskela/fitweek/internal/sqlite"
	"github.com/jkoskela/fitweek/internal/testhelpers"
)

func TestCalculateRecommendation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		weightKg       float64
		activityLevel  string
		workoutMinutes int
		climate        string
		want           hydration.Recommendation
	}{
		{
			// 70 × 33 × 1.0 × 1.0 = 2310
			name:          "sedentary in moderate climate",
			weightKg:      70,
			activityLevel: "sedentary",
			climate:       "moderate",
			want: hydration.Recommendation{
				DailyML:        2310,
				DailyOz:        78.1,
				HourlyTargetML: 144,
			},
		},
		{
			// 80 × 33 × 1.2 × 1.1 + 60/60 × 550 = 3484.8 + 550 = 4034.8
			name:           "active in hot climate with workout",
			weightKg:       80,
			activityLevel:  "moderate",
			workoutMinutes: 60,
			climate:        "hot",
			want: hydration.Recommendation{
				DailyML:           4035,
				DailyOz:           136.4,
				HourlyTargetML:    252,
				WorkoutAdditionML: 550,
			},
		},
		{
			// Unknown labels fall back to neutral factors.
			name:          "unknown labels",
			weightKg:      70,
			activityLevel: "extreme",
			climate:       "tropical",
			want: hydration.Recommendation{
				DailyML:        2310,
				DailyOz:        78.1,
				HourlyTargetML: 144,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := hydration.CalculateRecommendation(tt.weightKg, tt.activityLevel, tt.workoutMinutes, tt.climate)
			if got != tt.want {
				t.Errorf("CalculateRecommendation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func newTestRepository(t *testing.T) (*hydration.Repository, context.Context) {
	t.Helper()

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", logger)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	res, err := db.ReadWrite.ExecContext(context.Background(), `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)`,
		"drinker", "drinker@example.com", "irrelevant", time.Now().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}

	return hydration.NewRepository(db, logger), contexthelpers.WithAuthenticatedUserID(context.Background(), userID)
}

func TestRepositoryDailyIntake(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	for _, amount := range []float64{250, 500, 330} {
		if err := repo.Log(ctx, amount, day.Add(9*time.Hour)); err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	}
	// An entry on the previous day must not count.
	if err := repo.Log(ctx, 1000, day.Add(-2*time.Hour)); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	summary, err := repo.DailyIntake(ctx, day)
	if err != nil {
		t.Fatalf("DailyIntake() error = %v", err)
	}
	if summary.TotalML != 1080 || summary.Entries != 3 {
		t.Errorf("DailyIntake() = %+v, want 1080ml over 3 entries", summary)
	}
	if summary.TotalOz != 36.5 {
		t.Errorf("DailyIntake().TotalOz = %v, want 36.5", summary.TotalOz)
	}
	if summary.Date != "2025-06-02" {
		t.Errorf("DailyIntake().Date = %q, want 2025-06-02", summary.Date)
	}
}

func TestRepositoryWeeklyIntake(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	day := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	if err := repo.Log(ctx, 400, day.AddDate(0, 0, -3).Add(8*time.Hour)); err != nil {
		t.Fatalf("Log() error = %v", err)
	}
	if err := repo.Log(ctx, 600, day.Add(8*time.Hour)); err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	week, err := repo.WeeklyIntake(ctx, day)
	if err != nil {
		t.Fatalf("WeeklyIntake() error = %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("got %d days, want 7", len(week))
	}
	if week[3].TotalML != 400 {
		t.Errorf("day -3 total = %v, want 400", week[3].TotalML)
	}
	if week[6].TotalML != 600 {
		t.Errorf("latest day total = %v, want 600", week[6].TotalML)
	}
}
