package main

import (
	"net/http"

	"github.com/jkoskela/fitweek/internal/auth"
	"github.com/jkoskela/fitweek/internal/errors"
	"github.com/jkoskela/fitweek/internal/metrics"
)

// profileGET returns the logged-in user's profile.
func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.authService.Profile(r.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNoProfile) {
			app.clientError(w, r, http.StatusNotFound, "profile not found")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, profile)
}

// profilePUT upserts the logged-in user's profile.
func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var profile auth.Profile
	if err := readJSON(w, r, &profile); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.Age <= 0 {
		app.clientError(w, r, http.StatusUnprocessableEntity, "weight, height, and age must be positive")
		return
	}

	if err := app.authService.SaveProfile(r.Context(), profile); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, profile)
}

type targetsResponse struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"proteinGrams"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// targetsGET derives the daily nutrition targets from the stored profile.
func (app *application) targetsGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.authService.Profile(r.Context())
	if err != nil {
		if errors.Is(err, auth.ErrNoProfile) {
			app.clientError(w, r, http.StatusNotFound, "profile not found")
			return
		}
		app.serverError(w, r, err)
		return
	}

	bmr := metrics.CalculateBMR(profile.WeightKg, profile.HeightCm, profile.Age, profile.Sex)
	tdee := metrics.CalculateTDEE(bmr, metrics.ActivityFactor(profile.ActivityLevel))

	app.writeJSON(w, r, http.StatusOK, targetsResponse{
		BMR:           bmr,
		TDEE:          tdee,
		Calories:      tdee,
		ProteinGrams:  metrics.CalculateProteinTarget(profile.WeightKg, metrics.Goal(profile.Goal)),
		ActivityLevel: profile.ActivityLevel,
		Goal:          profile.Goal,
	})
}
