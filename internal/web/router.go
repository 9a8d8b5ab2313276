package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *App) NewRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.authMiddleware)

	r.Get("/", app.IndexHandler)

	r.Get("/register", app.RegisterHandler)
	r.Post("/register", app.RegisterHandler)
	r.Get("/login", app.LoginHandler)
	r.Post("/login", app.LoginHandler)
	r.Post("/logout", app.LogoutHandler)

	r.Post("/add", app.AddRatingHandler)
	r.Get("/edit/{id}", app.EditRatingHandler)
	r.Post("/edit/{id}", app.EditRatingHandler)
	r.Post("/delete/{id}", app.DeleteRatingHandler)

	r.Get("/leaderboard", app.LeaderboardHandler)
	r.Get("/uploads/{filename}", app.UploadsHandler)

	r.Get("/health", app.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Handle("/static/*", staticFileServer())

	return r
}

func staticFileServer() http.Handler {
	fs := http.FileServer(http.Dir("./static"))
	return http.StripPrefix("/static/", fs)
}

// authMiddleware puts the session's user into the request context.
// Handlers decide for themselves whether a missing user means a
// redirect to /login.
func (app *App) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := app.getSessionUserID(r)

		if userID > 0 {
			user, err := app.getUserById(userID)
			if err == nil && user != nil {
				ctx := context.WithValue(r.Context(), "user", user)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (app *App) getSessionUserID(r *http.Request) int {
	session, _ := app.Store.Get(r, "session")

	userID, ok := session.Values["user_id"].(int)
	if !ok {
		return 0
	}
	return userID
}

func (app *App) setSessionUserID(w http.ResponseWriter, r *http.Request, userID int) {
	session, _ := app.Store.Get(r, "session")
	session.Values["user_id"] = userID
	session.Save(r, w)
}

func (app *App) clearSessionUser(w http.ResponseWriter, r *http.Request) {
	session, _ := app.Store.Get(r, "session")
	delete(session.Values, "user_id")
	session.Save(r, w)
}
