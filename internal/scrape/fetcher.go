// Package scrape fetches candidate meals from a fixed set of recipe pages.
//
// The adapter is strictly best effort: network failures, timeouts, and pages
// without a recognisable nutrition mention all degrade to fewer (or zero)
// candidates. It never returns an error to the planning engine.
package scrape

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jkoskela/fitweek/internal/catalog"
)

const (
	fetchTimeout         = 5 * time.Second
	maxCandidatesPerType = 3
)

// caloriePatterns match the common ways recipe pages spell out energy content.
var caloriePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*calories`),
	regexp.MustCompile(`calories:\s*(\d+)`),
	regexp.MustCompile(`energy:\s*(\d+)\s*kcal`),
}

var proteinPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*g\s*protein`),
	regexp.MustCompile(`protein:\s*(\d+)`),
	regexp.MustCompile(`protein\s*(\d+)\s*g`),
}

// defaultSources maps each meal type to its reference recipe URLs.
func defaultSources() map[string][]string {
	return map[string][]string{
		catalog.MealBreakfast: {
			"https://www.eatingwell.com/recipe/269947/greek-yogurt-parfait",
			"https://www.foodnetwork.com/recipes/food-network-kitchen/healthy-breakfast-sandwich",
			"https://www.allrecipes.com/recipe/21014/good-old-fashioned-pancakes",
		},
		catalog.MealLunch: {
			"https://www.eatingwell.com/recipe/250300/quinoa-chickpea-salad",
			"https://www.foodnetwork.com/recipes/food-network-kitchen/healthy-grilled-chicken-sandwich",
			"https://www.allrecipes.com/recipe/234331/healthy-quinoa-salad",
		},
		catalog.MealDinner: {
			"https://www.eatingwell.com/recipe/262747/sheet-pan-chicken-fajitas",
			"https://www.foodnetwork.com/recipes/food-network-kitchen/healthy-grilled-salmon",
			"https://www.allrecipes.com/recipe/228823/healthy-vegetarian-chickpea-curry",
		},
	}
}

// Fetcher retrieves and parses recipe pages.
type Fetcher struct {
	client  *http.Client
	logger  *slog.Logger
	sources map[string][]string
}

// NewFetcher creates a fetcher with the default source URLs and a short
// request timeout.
func NewFetcher(logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: fetchTimeout},
		logger:  logger,
		sources: defaultSources(),
	}
}

// NewFetcherWithSources creates a fetcher against custom URLs. Used in tests
// with httptest servers.
func NewFetcherWithSources(logger *slog.Logger, client *http.Client, sources map[string][]string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Fetcher{
		client:  client,
		logger:  logger,
		sources: sources,
	}
}

// CandidatesFor fetches candidate meals for the given meal type. The target
// values are informational only; filtering against them is the planner's job.
func (f *Fetcher) CandidatesFor(ctx context.Context, mealType string, targetCalories, targetProtein float64) []catalog.Meal {
	urls := f.sources[mealType]
	if len(urls) == 0 {
		return nil
	}

	var (
		mu    sync.Mutex
		meals []catalog.Meal
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		g.Go(func() error {
			meal, ok := f.fetchOne(ctx, url)
			if !ok {
				return nil
			}
			mu.Lock()
			meals = append(meals, meal)
			mu.Unlock()
			return nil
		})
	}
	// The goroutines only ever return nil; the group is used for fan-out and
	// context plumbing.
	_ = g.Wait()

	if len(meals) > maxCandidatesPerType {
		meals = meals[:maxCandidatesPerType]
	}

	f.logger.LogAttrs(ctx, slog.LevelDebug, "fetched meal candidates",
		slog.String("meal_type", mealType),
		slog.Int("count", len(meals)),
		slog.Float64("target_calories", targetCalories),
		slog.Float64("target_protein", targetProtein))

	return meals
}

// fetchOne downloads and parses a single recipe page. A page is only usable
// when a positive calorie figure can be extracted.
func (f *Fetcher) fetchOne(ctx context.Context, url string) (catalog.Meal, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "build recipe request failed",
			slog.String("url", url), slog.Any("error", err))
		return catalog.Meal{}, false
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "fetch recipe failed",
			slog.String("url", url), slog.Any("error", err))
		return catalog.Meal{}, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "fetch recipe unexpected status",
			slog.String("url", url), slog.Int("status", resp.StatusCode))
		return catalog.Meal{}, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		f.logger.LogAttrs(ctx, slog.LevelDebug, "parse recipe page failed",
			slog.String("url", url), slog.Any("error", err))
		return catalog.Meal{}, false
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		return catalog.Meal{}, false
	}

	text := strings.ToLower(doc.Find("body").Text())
	calories := firstNumber(caloriePatterns, text)
	if calories <= 0 {
		return catalog.Meal{}, false
	}

	return catalog.Meal{
		Name:         title,
		Calories:     calories,
		Protein:      firstNumber(proteinPatterns, text),
		Restrictions: []string{},
		Cuisine:      []string{"Any"},
		Link:         url,
	}, true
}

// firstNumber returns the first capture of the first matching pattern, or 0.
func firstNumber(patterns []*regexp.Regexp, text string) float64 {
	for _, pattern := range patterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		return value
	}
	return 0
}
