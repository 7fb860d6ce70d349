package main

import (
	"net/http"

	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/workoutplan"
)

// scheduleGeneratePOST generates and stores a weekly workout schedule.
func (app *application) scheduleGeneratePOST(w http.ResponseWriter, r *http.Request) {
	var prefs workoutplan.SchedulePreferences
	if err := readJSON(w, r, &prefs); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := app.workoutService.GenerateSchedule(r.Context(), prefs)
	if err != nil {
		if errors.Is(err, workoutplan.ErrNoWorkouts) {
			app.clientError(w, r, http.StatusUnprocessableEntity, "no workouts could be generated from the preferences")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, stored)
}

type customScheduleRequest struct {
	Schedule    workoutplan.WeeklySchedule      `json:"schedule"`
	Preferences workoutplan.SchedulePreferences `json:"preferences"`
}

// scheduleCustomPOST stores a user-edited schedule as-is.
func (app *application) scheduleCustomPOST(w http.ResponseWriter, r *http.Request) {
	var req customScheduleRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	stored, err := app.workoutService.SaveCustomSchedule(r.Context(), req.Schedule, req.Preferences)
	if err != nil {
		if errors.Is(err, workoutplan.ErrNoWorkouts) {
			app.clientError(w, r, http.StatusUnprocessableEntity, "custom schedule has no workouts")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, stored)
}

// scheduleLatestGET returns the most recent stored schedule.
func (app *application) scheduleLatestGET(w http.ResponseWriter, r *http.Request) {
	stored, err := app.workoutService.LatestSchedule(r.Context())
	if err != nil {
		if errors.Is(err, workoutplan.ErrNotFound) {
			app.clientError(w, r, http.StatusNotFound, "no workout schedule found")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, stored)
}

// scheduleHistoryGET lists stored schedules, newest first.
func (app *application) scheduleHistoryGET(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultHistoryLimit)

	schedules, err := app.workoutService.ScheduleHistory(r.Context(), limit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, schedules)
}

type recoveryRequest struct {
	Workout       workoutplan.WorkoutSummary `json:"workout"`
	ExerciseNames []string                   `json:"exerciseNames"`
	FitnessLevel  string                     `json:"fitnessLevel"`
	Metrics       workoutplan.UserMetrics    `json:"metrics"`
}

// recoveryPOST scores a workout and returns the recovery recommendation
// bundle.
func (app *application) recoveryPOST(w http.ResponseWriter, r *http.Request) {
	var req recoveryRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment := app.workoutService.AssessRecovery(req.Workout, req.ExerciseNames, req.FitnessLevel, req.Metrics)

	app.writeJSON(w, r, http.StatusOK, assessment)
}
