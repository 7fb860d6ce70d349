package main

import (
	"net/http"

	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/mealplan"
)

const (
	defaultAlternativeCount    = 3
	defaultRecommendationCount = 5
	defaultHistoryLimit        = 10
)

type mealPlanRequest struct {
	Targets     mealplan.Targets     `json:"targets"`
	Preferences mealplan.Preferences `json:"preferences"`
}

// mealPlanGeneratePOST generates and stores a weekly meal plan.
func (app *application) mealPlanGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var req mealPlanRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Targets.Calories <= 0 || req.Targets.Protein <= 0 {
		app.clientError(w, r, http.StatusUnprocessableEntity, "calorie and protein targets must be positive")
		return
	}

	stored, err := app.mealplanService.GeneratePlan(r.Context(), req.Targets, req.Preferences)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, stored)
}

// mealPlanLatestGET returns the most recent stored plan.
func (app *application) mealPlanLatestGET(w http.ResponseWriter, r *http.Request) {
	stored, err := app.mealplanService.LatestPlan(r.Context())
	if err != nil {
		if errors.Is(err, mealplan.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no meal plan found")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, stored)
}

// mealPlanHistoryGET lists stored plans, newest first.
func (app *application) mealPlanHistoryGET(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultHistoryLimit)

	plans, err := app.mealplanService.PlanHistory(r.Context(), limit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, plans)
}

type validatePlanRequest struct {
	Plan    mealplan.WeeklyPlan `json:"plan"`
	Targets mealplan.Targets    `json:"targets"`
}

// mealPlanValidatePOST checks a plan's daily averages against the targets.
func (app *application) mealPlanValidatePOST(w http.ResponseWriter, r *http.Request) {
	var req validatePlanRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	app.writeJSON(w, r, http.StatusOK, app.mealplanService.ValidatePlan(req.Plan, req.Targets))
}

// mealAlternativesGET suggests replacements for a single meal slot.
func (app *application) mealAlternativesGET(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mealType := query.Get("mealType")
	if mealType == "" {
		app.clientError(w, r, http.StatusBadRequest, "mealType is required")
		return
	}

	targets := mealplan.Targets{
		Calories: queryFloat(r, "calories", 0),
		Protein:  queryFloat(r, "protein", 0),
	}
	prefs := mealplan.Preferences{
		Restrictions: query["restriction"],
		Cuisines:     query["cuisine"],
	}

	alternatives := app.mealplanService.Alternatives(
		mealType, targets, prefs, query.Get("exclude"), queryInt(r, "count", defaultAlternativeCount))

	app.writeJSON(w, r, http.StatusOK, alternatives)
}

// mealRecommendationsGET suggests meals near the per-meal share of the daily
// targets.
func (app *application) mealRecommendationsGET(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	targets := mealplan.Targets{
		Calories: queryFloat(r, "calories", 0),
		Protein:  queryFloat(r, "protein", 0),
	}
	prefs := mealplan.Preferences{
		Restrictions: query["restriction"],
		Cuisines:     query["cuisine"],
	}

	recommendations := app.mealplanService.Recommendations(targets, prefs, queryInt(r, "count", defaultRecommendationCount))

	app.writeJSON(w, r, http.StatusOK, recommendations)
}
