package mealplan_test

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/mealplan"
	"github.com/jkoskela/fitweek/internal/testhelpers"
)

func newTestGenerator(t *testing.T, source mealplan.CandidateSource) *mealplan.Generator {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	rng := rand.New(rand.NewPCG(1, 2))
	return mealplan.NewGenerator(catalog.Meals(), source, rng, logger)
}

func TestGenerateWeeklyPlanFillsEverySlot(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)
	targets := mealplan.Targets{Calories: 2000, Protein: 150}
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}

	plan := generator.GenerateWeeklyPlan(context.Background(), targets, prefs)

	if len(plan) != 7 {
		t.Fatalf("got %d days, want 7", len(plan))
	}
	cat := catalog.Meals()
	for _, day := range catalog.Days() {
		dayPlan, ok := plan[day]
		if !ok {
			t.Fatalf("missing day %q", day)
		}
		for _, mealType := range catalog.MealTypes() {
			meal, ok := dayPlan[mealType]
			if !ok {
				t.Fatalf("%s: missing %s", day, mealType)
			}
			if !slices.ContainsFunc(cat.For(mealType), func(m catalog.Meal) bool { return m.Name == meal.Name }) {
				t.Errorf("%s %s: %q is not a %s catalog meal", day, mealType, meal.Name, mealType)
			}
		}
	}
}

func TestGenerateWeeklyPlanHonoursRestrictions(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)
	// With these targets only the oatmeal matches the breakfast slot once
	// vegan-unsuitable meals are filtered out.
	targets := mealplan.Targets{Calories: 2000, Protein: 150}
	prefs := mealplan.Preferences{Restrictions: []string{"Vegan"}, Cuisines: []string{"Any"}}

	plan := generator.GenerateWeeklyPlan(context.Background(), targets, prefs)

	for _, day := range catalog.Days() {
		got := plan[day][catalog.MealBreakfast].Name
		if got != "Oatmeal with Protein Powder and Berries" {
			t.Errorf("%s breakfast = %q, want the oatmeal", day, got)
		}
	}
}

func TestGenerateWeeklyPlanFallsBackWhenNothingMatches(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)
	// Unreachable targets force the relaxed fallback for every slot.
	targets := mealplan.Targets{Calories: 10000, Protein: 900}
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}

	plan := generator.GenerateWeeklyPlan(context.Background(), targets, prefs)

	for _, day := range catalog.Days() {
		for _, mealType := range catalog.MealTypes() {
			if plan[day][mealType].Name == "" {
				t.Errorf("%s %s: slot left empty by fallback", day, mealType)
			}
		}
	}
}

func TestGenerateWeeklyPlanFallbackSkipsSourceCandidates(t *testing.T) {
	t.Parallel()

	curated := catalog.Meal{Name: "House Granola", Calories: 400, Protein: 30}
	scraped := catalog.Meal{Name: "Scraped Breakfast Bake", Calories: 450, Protein: 32}
	cat := catalog.MealCatalog{catalog.MealBreakfast: {curated}}
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	rng := rand.New(rand.NewPCG(1, 2))
	generator := mealplan.NewGenerator(cat, staticSource{meals: []catalog.Meal{scraped}}, rng, logger)

	// Nothing fits these targets, so every breakfast slot takes the relaxed
	// pick. That pick must come from the catalog, never from the source.
	targets := mealplan.Targets{Calories: 10000, Protein: 900}
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}

	plan := generator.GenerateWeeklyPlan(context.Background(), targets, prefs)

	for _, day := range catalog.Days() {
		if got := plan[day][catalog.MealBreakfast].Name; got != curated.Name {
			t.Errorf("%s breakfast = %q, want the catalog meal %q", day, got, curated.Name)
		}
	}
}

type staticSource struct {
	meals []catalog.Meal
}

func (s staticSource) CandidatesFor(context.Context, string, float64, float64) []catalog.Meal {
	return s.meals
}

func TestGenerateWeeklyPlanUsesCandidateSource(t *testing.T) {
	t.Parallel()

	scraped := catalog.Meal{
		Name:     "Scraped Power Bowl",
		Calories: 500,
		Protein:  37,
		Cuisine:  []string{"Fusion"},
	}
	generator := newTestGenerator(t, staticSource{meals: []catalog.Meal{scraped}})
	// No catalog meal carries the Fusion cuisine, so the scraped candidate is
	// the only breakfast slot match.
	targets := mealplan.Targets{Calories: 2000, Protein: 150}
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Fusion"}}

	plan := generator.GenerateWeeklyPlan(context.Background(), targets, prefs)

	for _, day := range catalog.Days() {
		if got := plan[day][catalog.MealBreakfast].Name; got != scraped.Name {
			t.Errorf("%s breakfast = %q, want %q", day, got, scraped.Name)
		}
	}
}

func TestAlternatives(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}

	got := generator.Alternatives(catalog.MealBreakfast, 500, 37.5, prefs, "Greek Yogurt Parfait", 3)

	var names []string
	for _, meal := range got {
		names = append(names, meal.Name)
	}
	// The tofu scramble misses the calorie window, so only two meals qualify.
	want := []string{
		"Oatmeal with Protein Powder and Berries",
		"Spinach and Feta Omelette",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Alternatives() names mismatch (-want +got):\n%s", diff)
	}

	for _, meal := range generator.Alternatives(catalog.MealBreakfast, 400, 30, prefs, "Oatmeal with Protein Powder and Berries", 3) {
		if meal.Name == "Oatmeal with Protein Powder and Berries" {
			t.Error("Alternatives() returned the excluded meal")
		}
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)

	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}
	got := generator.Recommendations(1500, 90, prefs, 3)

	if len(got) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(got))
	}
	seen := map[string]bool{}
	for _, meal := range got {
		if seen[meal.Name] {
			t.Errorf("duplicate recommendation %q", meal.Name)
		}
		seen[meal.Name] = true
		if math.Abs(meal.Calories-500) > 300 {
			t.Errorf("%q calories %v outside the 500±300 window", meal.Name, meal.Calories)
		}
		if math.Abs(meal.Protein-30) > 20 {
			t.Errorf("%q protein %v outside the 30±20 window", meal.Name, meal.Protein)
		}
	}
}

func TestRecommendationsExcludeBandEdge(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)

	// Per-meal targets are 700 kcal / 30 g, putting the 400 kcal oatmeal
	// exactly 300 kcal away. The band is exclusive, so it must not appear.
	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}
	got := generator.Recommendations(2100, 90, prefs, 12)

	if len(got) == 0 {
		t.Fatal("got no recommendations")
	}
	for _, meal := range got {
		if meal.Name == "Oatmeal with Protein Powder and Berries" {
			t.Errorf("recommended %q, which sits exactly on the calorie band", meal.Name)
		}
		if dev := math.Abs(meal.Calories - 700); dev >= 300 {
			t.Errorf("%q calorie deviation %v, want under 300", meal.Name, dev)
		}
	}
}

func TestRecommendationsNoneQualify(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, nil)

	prefs := mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}}
	if got := generator.Recommendations(9000, 600, prefs, 3); len(got) != 0 {
		t.Errorf("got %d recommendations for unreachable targets, want 0", len(got))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	plan := mealplan.WeeklyPlan{
		"Monday": {
			catalog.MealBreakfast: {Name: "A", Calories: 500, Protein: 40},
			catalog.MealLunch:     {Name: "B", Calories: 700, Protein: 50},
			catalog.MealDinner:    {Name: "C", Calories: 800, Protein: 60},
		},
		"Tuesday": {
			catalog.MealBreakfast: {Name: "A", Calories: 500, Protein: 40},
			catalog.MealLunch:     {Name: "B", Calories: 700, Protein: 50},
			catalog.MealDinner:    {Name: "C", Calories: 800, Protein: 60},
		},
	}

	tests := []struct {
		name      string
		targets   mealplan.Targets
		wantValid bool
	}{
		{name: "within tolerance", targets: mealplan.Targets{Calories: 2100, Protein: 140}, wantValid: true},
		{name: "calories too far", targets: mealplan.Targets{Calories: 2500, Protein: 150}, wantValid: false},
		{name: "protein too far", targets: mealplan.Targets{Calories: 2000, Protein: 200}, wantValid: false},
		{name: "calories exactly at the band", targets: mealplan.Targets{Calories: 2300, Protein: 150}, wantValid: false},
		{name: "protein exactly at the band", targets: mealplan.Targets{Calories: 2000, Protein: 170}, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mealplan.Validate(plan, tt.targets)
			if got.Valid != tt.wantValid {
				t.Errorf("Validate().Valid = %v, want %v (%+v)", got.Valid, tt.wantValid, got)
			}
			if got.AverageCalories != 2000 || got.AverageProtein != 150 {
				t.Errorf("averages = (%v, %v), want (2000, 150)", got.AverageCalories, got.AverageProtein)
			}
		})
	}

	empty := mealplan.Validate(mealplan.WeeklyPlan{}, mealplan.Targets{Calories: 2000, Protein: 150})
	if empty.Valid {
		t.Error("empty plan validated as valid")
	}
}
