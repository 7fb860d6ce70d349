package main

import (
	"log/slog"
	"net/http"

	"github.com/jkoskela/fitweek/internal/auth"
	"github.com/jkoskela/fitweek/internal/contexthelpers"
	"github.com/jkoskela/fitweek/internal/errors"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerPOST creates a new account and logs it in.
func (app *application) registerPOST(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := app.authService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			app.clientError(w, r, http.StatusConflict, "username or email already taken")
			return
		}
		app.serverError(w, r, err)
		return
	}

	if err = app.loginSession(r, user.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusCreated, user)
}

// loginPOST verifies credentials and establishes a session.
func (app *application) loginPOST(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := readJSON(w, r, &req); err != nil {
		app.clientError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := app.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.clientError(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}
		app.serverError(w, r, err)
		return
	}

	if err = app.loginSession(r, user.ID); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "user logged in", slog.Int64("user_id", user.ID))
	app.writeJSON(w, r, http.StatusOK, user)
}

// logoutPOST destroys the session.
func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.sessionManager.Destroy(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged out"})
}

// tokenPOST mints a bearer token for the logged-in user so non-browser
// clients can skip the session cookie.
func (app *application) tokenPOST(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())

	token, err := app.tokenIssuer.Issue(userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"token": token})
}

// loginSession rotates the session token and stores the user ID in it.
func (app *application) loginSession(r *http.Request, userID int64) error {
	if err := app.sessionManager.RenewToken(r.Context()); err != nil {
		return errors.Wrap(err, "renew session token")
	}
	app.sessionManager.Put(r.Context(), sessionKeyUserID, userID)
	return nil
}
