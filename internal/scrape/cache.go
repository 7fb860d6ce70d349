package scrape

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jkoskela/fitweek/internal/catalog"
)

// Cache serves the most recently fetched candidates so plan generation never
// waits on the network. Refresh is expected to run periodically.
type Cache struct {
	fetcher *Fetcher
	logger  *slog.Logger

	mu     sync.RWMutex
	byType map[string][]catalog.Meal
}

// NewCache creates an empty candidate cache around a fetcher.
func NewCache(fetcher *Fetcher, logger *slog.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		byType:  make(map[string][]catalog.Meal),
	}
}

// Refresh re-fetches candidates for every meal type and swaps them in.
func (c *Cache) Refresh(ctx context.Context) {
	fresh := make(map[string][]catalog.Meal, len(catalog.MealTypes()))
	total := 0
	for _, mealType := range catalog.MealTypes() {
		meals := c.fetcher.CandidatesFor(ctx, mealType, 0, 0)
		fresh[mealType] = meals
		total += len(meals)
	}

	c.mu.Lock()
	c.byType = fresh
	c.mu.Unlock()

	c.logger.LogAttrs(ctx, slog.LevelInfo, "refreshed meal candidate cache", slog.Int("candidates", total))
}

// CandidatesFor returns the cached candidates for a meal type. The target
// values are accepted for interface compatibility; filtering happens in the
// planner.
func (c *Cache) CandidatesFor(_ context.Context, mealType string, _, _ float64) []catalog.Meal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.byType[mealType])
}
