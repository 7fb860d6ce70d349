package mealplan_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/mealplan"
	"github.com/jkoskela/fitweek/internal/sqlite"
	"github.com/jkoskela/fitweek/internal/testhelpers"
)

func newTestRepository(t *testing.T) (*mealplan.Repository, context.Context) {
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
		"planner", "planner@example.com", "irrelevant", time.Now().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	userID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("user id: %v", err)
	}

	return mealplan.NewRepository(db, logger), contexthelpers.WithAuthenticatedUserID(context.Background(), userID)
}

func testPlan() mealplan.WeeklyPlan {
	plan := make(mealplan.WeeklyPlan)
	for _, day := range catalog.Days() {
		plan[day] = mealplan.DayPlan{
			catalog.MealBreakfast: {Name: "Oatmeal", Calories: 400, Protein: 30},
			catalog.MealLunch:     {Name: "Salad", Calories: 450, Protein: 40},
			catalog.MealDinner:    {Name: "Salmon", Calories: 500, Protein: 45},
		}
	}
	return plan
}

func TestRepositoryLatestWithoutPlans(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)

	if _, err := repo.Latest(ctx); !errors.Is(err, mealplan.ErrNotFound) {
		t.Errorf("Latest() error = %v, want ErrNotFound", err)
	}
}

func TestRepositorySaveAndLatest(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	targets := mealplan.Targets{Calories: 2200, Protein: 160}

	stored, err := repo.Save(ctx, testPlan(), targets)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if stored.ID == "" {
		t.Fatal("Save() returned empty plan ID")
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.ID != stored.ID {
		t.Errorf("Latest().ID = %q, want %q", latest.ID, stored.ID)
	}
	if latest.Targets != targets {
		t.Errorf("Latest().Targets = %+v, want %+v", latest.Targets, targets)
	}
	if diff := cmp.Diff(testPlan(), latest.Meals); diff != "" {
		t.Errorf("Latest().Meals mismatch (-want +got):\n%s", diff)
	}
}

func TestRepositoryHistory(t *testing.T) {
	t.Parallel()

	repo, ctx := newTestRepository(t)
	targets := mealplan.Targets{Calories: 2000, Protein: 150}

	var ids []string
	for range 3 {
		stored, err := repo.Save(ctx, testPlan(), targets)
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids = append(ids, stored.ID)
	}

	history, err := repo.History(ctx, 2)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d plans, want 2", len(history))
	}
	// All saves land in the same second, so ordering falls back to ID.
	for _, plan := range history {
		found := false
		for _, id := range ids {
			if plan.ID == id {
				found = true
			}
		}
		if !found {
			t.Errorf("history returned unknown plan %q", plan.ID)
		}
	}

	otherUser := contexthelpers.WithAuthenticatedUserID(context.Background(), 9999)
	history, err = repo.History(otherUser, 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("got %d plans for another user, want 0", len(history))
	}
}
