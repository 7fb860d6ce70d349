package main

import (
	"net/http"

	"github.com/jkoskela/fitweek/internal/progress"
)

// progressPOST records a dated progress entry.
func (app *application) progressPOST(w http.ResponseWriter, r *http.Request) {
	var entry progress.Entry
	if err := readJSON(w, r, &entry); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if entry.WeightKg <= 0 {
		app.clientError(w, r, http.StatusUnprocessableEntity, "weight must be positive")
		return
	}

	stored, err := app.progressRepo.Add(r.Context(), entry)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, stored)
}

type progressResponse struct {
	Summary progress.Summary `json:"summary"`
	Entries []progress.Entry `json:"entries"`
}

// progressGET summarizes the entries of the requested window, defaulting to
// the last 30 days.
func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	windowDays := queryInt(r, "days", progress.DefaultWindowDays)

	summary, entries, err := app.progressRepo.WindowSummary(r.Context(), windowDays)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, progressResponse{Summary: summary, Entries: entries})
}
