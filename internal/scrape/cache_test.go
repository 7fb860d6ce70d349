package scrape_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/scrape"
	"github.com/jkoskela/fitweek/internal/testhelpers"
)

func TestCacheServesRefreshedCandidates(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/soup", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = fmt.Fprint(w, recipePage("Lentil Soup", "Calories: 380, 22g protein"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	fetcher := scrape.NewFetcherWithSources(logger, srv.Client(), map[string][]string{
		catalog.MealLunch: {srv.URL + "/soup"},
	})
	cache := scrape.NewCache(fetcher, logger)
	ctx := context.Background()

	if meals := cache.CandidatesFor(ctx, catalog.MealLunch, 700, 50); len(meals) != 0 {
		t.Fatalf("got %d candidates before refresh, want 0", len(meals))
	}

	cache.Refresh(ctx)

	meals := cache.CandidatesFor(ctx, catalog.MealLunch, 700, 50)
	if len(meals) != 1 {
		t.Fatalf("got %d candidates, want 1: %+v", len(meals), meals)
	}
	if meals[0].Name != "Lentil Soup" || meals[0].Calories != 380 {
		t.Errorf("cached meal = %+v, want Lentil Soup with 380 kcal", meals[0])
	}

	// Reads are served from memory, not the network.
	fetched := hits.Load()
	cache.CandidatesFor(ctx, catalog.MealLunch, 700, 50)
	if hits.Load() != fetched {
		t.Errorf("cache read hit the network: %d -> %d fetches", fetched, hits.Load())
	}

	// Callers own their slice; mutating it must not corrupt the cache.
	meals[0].Name = "mutated"
	if got := cache.CandidatesFor(ctx, catalog.MealLunch, 700, 50); got[0].Name != "Lentil Soup" {
		t.Errorf("cache entry mutated through a returned slice: %+v", got[0])
	}
}
