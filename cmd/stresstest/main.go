// Command stresstest drives the API with many concurrent users and reports
// latency and success-rate numbers. It is meant for manual runs against a
// staging deployment, not CI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jkoskela/fitweek/internal/catalog"
	"github.com/jkoskela/fitweek/internal/e2etest"
	"github.com/jkoskela/fitweek/internal/logging"
	"github.com/jkoskela/fitweek/internal/mealplan"
	"github.com/jkoskela/fitweek/internal/testhelpers"
	"github.com/jkoskela/fitweek/internal/workoutplan"
)

const (
	defaultUserCount           = 25
	maxConcurrentRegistrations = 10
	scenarioTimeout            = 30 * time.Second
	successRateThreshold       = 95.0
)

type results struct {
	mu        sync.Mutex
	latencies []time.Duration
	failures  int
}

func (r *results) record(latency time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latencies = append(r.latencies, latency)
	if err != nil {
		r.failures++
	}
}

// runScenario walks one user through the main planning flow.
func runScenario(ctx context.Context, client *e2etest.Client) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()

	if _, err := client.Register(ctx); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	profile := map[string]any{
		"weightKg":            75,
		"heightCm":            180,
		"age":                 32,
		"sex":                 "Male",
		"activityLevel":       "Moderately Active",
		"goal":                "Maintain",
		"dietaryRestrictions": []string{"None"},
		"cuisinePreferences":  []string{"Any"},
	}
	if status, err := client.Put(ctx, "/api/profile", profile, nil); err != nil || status != http.StatusOK {
		return fmt.Errorf("save profile: status %d: %w", status, err)
	}

	planReq := map[string]any{
		"targets":     mealplan.Targets{Calories: 2400, Protein: 135},
		"preferences": mealplan.Preferences{Restrictions: []string{"None"}, Cuisines: []string{"Any"}},
	}
	var plan mealplan.StoredPlan
	if status, err := client.Post(ctx, "/api/meal-plans", planReq, &plan); err != nil || status != http.StatusCreated {
		return fmt.Errorf("generate meal plan: status %d: %w", status, err)
	}
	if len(plan.Meals) != 7 {
		return fmt.Errorf("meal plan has %d days", len(plan.Meals))
	}

	schedulePrefs := workoutplan.SchedulePreferences{
		FitnessLevel:      "Intermediate",
		Goals:             []string{"Strength"},
		AvailableDays:     []string{"Monday", "Thursday"},
		Equipment:         []string{catalog.EquipmentDumbbells, catalog.EquipmentFullGym},
		MinutesPerSession: 60,
		DayMuscleGroups: map[string][]string{
			"Monday":   {"Chest", "Back"},
			"Thursday": {"Legs"},
		},
	}
	status, err := client.Post(ctx, "/api/workout-schedules", schedulePrefs, nil)
	if err != nil || status != http.StatusCreated {
		return fmt.Errorf("generate schedule: status %d: %w", status, err)
	}

	if status, err = client.Post(ctx, "/api/water", map[string]float64{"amountMl": 500}, nil); err != nil ||
		status != http.StatusCreated {
		return fmt.Errorf("log water: status %d: %w", status, err)
	}

	return nil
}

func percentile(latencies []time.Duration, p float64) time.Duration {
	if len(latencies) == 0 {
		return 0
	}
	idx := int(float64(len(latencies)-1) * p)
	return latencies[idx]
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) < 2 {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname> [users]")
		os.Exit(1)
	}

	hostname := os.Args[1]
	userCount := defaultUserCount
	if len(os.Args) > 2 {
		var err error
		if userCount, err = strconv.Atoi(os.Args[2]); err != nil || userCount <= 0 {
			logger.LogAttrs(ctx, slog.LevelError, "invalid user count", slog.String("arg", os.Args[2]))
			os.Exit(1)
		}
	}

	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}
	ctx = logging.WithAttrs(ctx, slog.String("url", url), slog.Int("users", userCount))

	readyClient, err := e2etest.NewClient(url)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = readyClient.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	var (
		res   results
		start = time.Now()
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentRegistrations)
	for i := range userCount {
		group.Go(func() error {
			client, clientErr := e2etest.NewClient(url)
			if clientErr != nil {
				return fmt.Errorf("client for user %d: %w", i, clientErr)
			}

			scenarioStart := time.Now()
			scenarioErr := runScenario(groupCtx, client)
			res.record(time.Since(scenarioStart), scenarioErr)
			if scenarioErr != nil {
				logger.LogAttrs(groupCtx, slog.LevelWarn, "scenario failed",
					slog.Int("user", i), slog.Any("error", scenarioErr))
			}
			// Failures are counted, not fatal; keep the rest of the load going.
			return nil
		})
	}
	_ = group.Wait()

	sort.Slice(res.latencies, func(i, j int) bool { return res.latencies[i] < res.latencies[j] })
	total := len(res.latencies)
	successRate := 100 * float64(total-res.failures) / float64(total)

	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Duration("duration", time.Since(start)),
		slog.Int("scenarios", total),
		slog.Int("failures", res.failures),
		slog.String("success_rate", fmt.Sprintf("%.1f%%", successRate)),
		slog.Duration("p50", percentile(res.latencies, 0.50)),
		slog.Duration("p95", percentile(res.latencies, 0.95)),
		slog.Duration("max", percentile(res.latencies, 1.0)))

	if successRate < successRateThreshold {
		os.Exit(1)
	}
	os.Exit(0)
}
