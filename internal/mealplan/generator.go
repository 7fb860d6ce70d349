package mealplan

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"sort"

	"github.com/jkoskela/fitweek/internal/catalog"
)

// CandidateSource supplies extra meal candidates beyond the static catalog,
// typically scraped from recipe sites. Implementations are best effort and
// may return nothing.
type CandidateSource interface {
	CandidatesFor(ctx context.Context, mealType string, targetCalories, targetProtein float64) []catalog.Meal
}

// slotShares split the daily targets across meal slots. The same share applies
// to calories and protein.
var slotShares = map[string]float64{
	catalog.MealBreakfast: 0.25,
	catalog.MealLunch:     0.35,
	catalog.MealDinner:    0.40,
}

const (
	// Per-slot match windows around the slot target.
	slotCalorieTolerance = 200.0
	slotProteinTolerance = 15.0

	// Recommendation windows around the per-meal target.
	recommendCalorieBand = 300.0
	recommendProteinBand = 20.0
)

// Generator assembles meal plans from the catalog and an optional candidate
// source. The random source is injected so plans are reproducible in tests.
type Generator struct {
	catalog catalog.MealCatalog
	source  CandidateSource
	rng     *rand.Rand
	logger  *slog.Logger
}

// NewGenerator creates a meal plan generator. source may be nil, in which case
// only the static catalog is used.
func NewGenerator(cat catalog.MealCatalog, source CandidateSource, rng *rand.Rand, logger *slog.Logger) *Generator {
	return &Generator{
		catalog: cat,
		source:  source,
		rng:     rng,
		logger:  logger,
	}
}

// GenerateWeeklyPlan builds a plan for every day of the week. Each slot picks
// uniformly among meals matching the preferences and the slot targets; when no
// meal matches, the slot falls back to a uniform pick from the full catalog
// for that meal type so the plan always has every slot filled.
func (g *Generator) GenerateWeeklyPlan(ctx context.Context, targets Targets, prefs Preferences) WeeklyPlan {
	plan := make(WeeklyPlan, len(catalog.Days()))

	for _, day := range catalog.Days() {
		dayPlan := make(DayPlan, len(catalog.MealTypes()))

		for _, mealType := range catalog.MealTypes() {
			share := slotShares[mealType]
			slotCalories := targets.Calories * share
			slotProtein := targets.Protein * share

			pool := slices.Clone(g.catalog.For(mealType))
			if g.source != nil {
				pool = append(pool, g.source.CandidatesFor(ctx, mealType, slotCalories, slotProtein)...)
			}
			if len(pool) == 0 {
				continue
			}

			var matching []catalog.Meal
			for _, meal := range pool {
				if matchesPreferences(meal, prefs) && fitsSlot(meal, slotCalories, slotProtein) {
					matching = append(matching, meal)
				}
			}

			if len(matching) == 0 {
				g.logger.LogAttrs(ctx, slog.LevelWarn, "no meal matches slot, relaxing constraints",
					slog.String("day", day),
					slog.String("meal_type", mealType),
					slog.Float64("slot_calories", slotCalories),
					slog.Float64("slot_protein", slotProtein))
				// The relaxed pick draws from the curated catalog only, never
				// from scraped candidates.
				matching = g.catalog.For(mealType)
			}
			if len(matching) == 0 {
				continue
			}

			dayPlan[mealType] = matching[g.rng.IntN(len(matching))]
		}

		plan[day] = dayPlan
	}

	return plan
}

// Alternatives returns up to count catalog meals of the given type that pass
// the same preference and slot target filter as plan generation, excluding the
// named meal. Results come back in catalog order without ranking.
func (g *Generator) Alternatives(
	mealType string,
	slotCalories, slotProtein float64,
	prefs Preferences,
	excludeName string,
	count int,
) []catalog.Meal {
	var alternatives []catalog.Meal
	for _, meal := range g.catalog.For(mealType) {
		if meal.Name == excludeName {
			continue
		}
		if !matchesPreferences(meal, prefs) || !fitsSlot(meal, slotCalories, slotProtein) {
			continue
		}
		alternatives = append(alternatives, meal)
		if len(alternatives) == count {
			break
		}
	}
	return alternatives
}

// Recommendations suggests meals near the per-meal share of the daily targets.
// Meals are ranked by combined deviation; when more than count qualify, the
// result is sampled from the best candidates so repeated calls vary.
func (g *Generator) Recommendations(targetCalories, targetProtein float64, prefs Preferences, count int) []catalog.Meal {
	perMealCalories := targetCalories / 3
	perMealProtein := targetProtein / 3

	type scoredMeal struct {
		meal      catalog.Meal
		deviation float64
	}

	var candidates []scoredMeal
	for _, meal := range g.catalog.All() {
		if !matchesPreferences(meal, prefs) {
			continue
		}
		calorieDeviation := math.Abs(meal.Calories - perMealCalories)
		proteinDeviation := math.Abs(meal.Protein - perMealProtein)
		if calorieDeviation >= recommendCalorieBand || proteinDeviation >= recommendProteinBand {
			continue
		}
		candidates = append(candidates, scoredMeal{
			meal:      meal,
			deviation: calorieDeviation + proteinDeviation,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].deviation < candidates[j].deviation
	})

	if len(candidates) <= count {
		meals := make([]catalog.Meal, len(candidates))
		for i, candidate := range candidates {
			meals[i] = candidate.meal
		}
		return meals
	}

	// Sample without replacement from the top candidates.
	poolSize := int(math.Ceil(float64(count) * 1.5))
	if poolSize > len(candidates) {
		poolSize = len(candidates)
	}
	meals := make([]catalog.Meal, 0, count)
	for _, idx := range g.rng.Perm(poolSize)[:count] {
		meals = append(meals, candidates[idx].meal)
	}
	return meals
}

// matchesPreferences reports whether a meal is acceptable under the user's
// dietary restrictions and cuisine preferences.
func matchesPreferences(meal catalog.Meal, prefs Preferences) bool {
	restrictionsDisabled := len(prefs.Restrictions) == 1 && prefs.Restrictions[0] == "None"
	if !restrictionsDisabled && intersects(meal.Restrictions, prefs.Restrictions) {
		return false
	}
	return intersects(meal.Cuisine, prefs.Cuisines) || slices.Contains(prefs.Cuisines, "Any")
}

func fitsSlot(meal catalog.Meal, slotCalories, slotProtein float64) bool {
	return math.Abs(meal.Calories-slotCalories) < slotCalorieTolerance &&
		math.Abs(meal.Protein-slotProtein) < slotProteinTolerance
}

func intersects(a, b []string) bool {
	for _, value := range a {
		if slices.Contains(b, value) {
			return true
		}
	}
	return false
}
