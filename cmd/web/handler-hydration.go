package main

import (
	"net/http"
	"time"

	"github.com/jkoskela/fitweek/internal/hydration"
)

type waterLogRequest struct {
	AmountML float64 `json:"amountMl"`
}

// waterPOST logs a water intake amount for the logged-in user.
func (app *application) waterPOST(w http.ResponseWriter, r *http.Request) {
	var req waterLogRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AmountML <= 0 {
		app.clientError(w, r, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}

	if err := app.hydrationRepo.Log(r.Context(), req.AmountML, time.Now()); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, map[string]string{"status": "logged"})
}

// waterDailyGET sums today's intake, or the day given as ?date=2006-01-02.
func (app *application) waterDailyGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayQuery(w, r)
	if !ok {
		return
	}

	summary, err := app.hydrationRepo.DailyIntake(r.Context(), day)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, summary)
}

// waterWeeklyGET returns daily summaries for the 7 days ending at ?date,
// defaulting to today.
func (app *application) waterWeeklyGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayQuery(w, r)
	if !ok {
		return
	}

	summaries, err := app.hydrationRepo.WeeklyIntake(r.Context(), day)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, summaries)
}

// waterRecommendationGET computes the daily hydration recommendation from
// query parameters.
func (app *application) waterRecommendationGET(w http.ResponseWriter, r *http.Request) {
	weightKg := queryFloat(r, "weight", 0)
	if weightKg <= 0 {
		app.clientError(w, r, http.StatusBadRequest, "weight is required")
		return
	}

	recommendation := hydration.CalculateRecommendation(
		weightKg,
		r.URL.Query().Get("activityLevel"),
		queryInt(r, "workoutMinutes", 0),
		r.URL.Query().Get("climate"))

	app.writeJSON(w, r, http.StatusOK, recommendation)
}

// parseDayQuery parses the optional "date" query parameter, defaulting to
// today. On malformed input it sends a 400 response and reports false.
func (app *application) parseDayQuery(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), true
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest, "date must be formatted as 2006-01-02")
		return time.Time{}, false
	}
	return day, true
}
