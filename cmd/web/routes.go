package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(noCache(next))))
		}
		session = func(next http.Handler) http.Handler {
			return base(app.sessionManager.LoadAndSave(app.authenticate(next)))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))

	mux.Handle("POST /api/register", session(http.HandlerFunc(app.registerPOST)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("POST /api/token", mustSession(http.HandlerFunc(app.tokenPOST)))

	mux.Handle("GET /api/profile", mustSession(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", mustSession(http.HandlerFunc(app.profilePUT)))
	mux.Handle("GET /api/profile/targets", mustSession(http.HandlerFunc(app.targetsGET)))

	mux.Handle("POST /api/meal-plans", mustSession(http.HandlerFunc(app.mealPlanGeneratePOST)))
	mux.Handle("GET /api/meal-plans/latest", mustSession(http.HandlerFunc(app.mealPlanLatestGET)))
	mux.Handle("GET /api/meal-plans", mustSession(http.HandlerFunc(app.mealPlanHistoryGET)))
	mux.Handle("POST /api/meal-plans/validate", mustSession(http.HandlerFunc(app.mealPlanValidatePOST)))
	mux.Handle("GET /api/meals/alternatives", mustSession(http.HandlerFunc(app.mealAlternativesGET)))
	mux.Handle("GET /api/meals/recommendations", mustSession(http.HandlerFunc(app.mealRecommendationsGET)))

	mux.Handle("POST /api/workout-schedules", mustSession(http.HandlerFunc(app.scheduleGeneratePOST)))
	mux.Handle("POST /api/workout-schedules/custom", mustSession(http.HandlerFunc(app.scheduleCustomPOST)))
	mux.Handle("GET /api/workout-schedules/latest", mustSession(http.HandlerFunc(app.scheduleLatestGET)))
	mux.Handle("GET /api/workout-schedules", mustSession(http.HandlerFunc(app.scheduleHistoryGET)))
	mux.Handle("POST /api/recovery", mustSession(http.HandlerFunc(app.recoveryPOST)))

	mux.Handle("POST /api/progress", mustSession(http.HandlerFunc(app.progressPOST)))
	mux.Handle("GET /api/progress", mustSession(http.HandlerFunc(app.progressGET)))

	mux.Handle("POST /api/water", mustSession(http.HandlerFunc(app.waterPOST)))
	mux.Handle("GET /api/water/daily", mustSession(http.HandlerFunc(app.waterDailyGET)))
	mux.Handle("GET /api/water/weekly", mustSession(http.HandlerFunc(app.waterWeeklyGET)))
	mux.Handle("GET /api/water/recommendation", mustSession(http.HandlerFunc(app.waterRecommendationGET)))

	return mux
}
