package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"pintlog/internal/models"
	"pintlog/internal/score"
	"pintlog/internal/utils"
)

type IndexPageData struct {
	User    *models.User
	Ratings []models.Rating
	Flashes []Flash
}

func (app *App) IndexHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ratings, err := app.getRecentRatings(user.UserID, 200)
	if err != nil {
		slog.Error("Failed to load ratings", "user_id", user.UserID, "error", err)
		http.Error(w, "Failed to load ratings", http.StatusInternalServerError)
		return
	}

	page := IndexPageData{
		User:    user,
		Ratings: ratings,
		Flashes: app.popFlashes(w, r),
	}
	err = app.Pages["index"].ExecuteTemplate(w, "layout", page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type RegisterPageData struct {
	User    *models.User
	Flashes []Flash
}

func (app *App) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if app.getUserFromContext(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		username := strings.ToLower(strings.TrimSpace(r.FormValue("username")))
		password := r.FormValue("password")

		if utf8.RuneCountInString(username) < 3 {
			app.addFlash(w, r, "Username must be at least 3 characters.", "error")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		if utf8.RuneCountInString(password) < 6 {
			app.addFlash(w, r, "Password must be at least 6 characters.", "error")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		pwHash, err := utils.GeneratePasswordHash(password)
		if err != nil {
			slog.Error("Failed to hash password", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		err = app.addUser(username, pwHash)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			app.addFlash(w, r, "That username is taken.", "error")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		if err != nil {
			slog.Error("Failed to create user", "username", username, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		slog.Info("User registered", "username", username)
		app.addFlash(w, r, "Account created. Please log in.", "success")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	page := RegisterPageData{Flashes: app.popFlashes(w, r)}
	err := app.Pages["register"].ExecuteTemplate(w, "layout", page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type LoginPageData struct {
	User    *models.User
	Flashes []Flash
}

func (app *App) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if app.getUserFromContext(r) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		username := strings.ToLower(strings.TrimSpace(r.FormValue("username")))
		password := r.FormValue("password")

		user, err := app.getUserByUsername(username)
		if err != nil {
			slog.Error("Failed to look up user", "username", username, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		// Same notice for unknown user and wrong password.
		if user == nil || !utils.CheckPasswordHash(user.PasswordHash, password) {
			app.addFlash(w, r, "Invalid username or password.", "error")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		slog.Info("User logged in", "user_id", user.UserID, "username", user.Username)
		app.setSessionUserID(w, r, user.UserID)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page := LoginPageData{Flashes: app.popFlashes(w, r)}
	err := app.Pages["login"].ExecuteTemplate(w, "layout", page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (app *App) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	app.clearSessionUser(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (app *App) AddRatingHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if !app.parseRatingForm(w, r) {
		return
	}

	var rating models.Rating
	rating.UserID = user.UserID
	fillRatingForm(&rating, r, user.Username)

	photo, err := app.savePhoto(r)
	if errors.Is(err, errPhotoType) {
		app.addFlash(w, r, "Photo must be png/jpg/jpeg/webp/gif.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("Failed to store photo", "error", err)
		http.Error(w, "Failed to store photo", http.StatusInternalServerError)
		return
	}
	rating.PhotoPath = photo

	if err := app.insertRating(&rating); err != nil {
		slog.Error("Failed to save rating", "user_id", user.UserID, "error", err)
		http.Error(w, "Failed to save rating", http.StatusInternalServerError)
		return
	}
	ratingsCreated.Inc()

	slog.Info("Rating saved", "user_id", user.UserID, "rating_id", rating.ID, "score", rating.Score)
	app.addFlash(w, r, fmt.Sprintf("Saved! Score: %.1f", rating.Score), "success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type EditPageData struct {
	User    *models.User
	Rating  *models.Rating
	Flashes []Flash
}

func (app *App) EditRatingHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ratingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.addFlash(w, r, "Entry not found.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	rating, err := app.getRating(ratingID, user.UserID)
	if err != nil {
		slog.Error("Failed to load rating", "rating_id", ratingID, "error", err)
		http.Error(w, "Failed to load rating", http.StatusInternalServerError)
		return
	}
	if rating == nil {
		app.addFlash(w, r, "Entry not found.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		if !app.parseRatingForm(w, r) {
			return
		}
		fillRatingForm(rating, r, user.Username)

		photo, err := app.savePhoto(r)
		if errors.Is(err, errPhotoType) {
			app.addFlash(w, r, "Photo must be png/jpg/jpeg/webp/gif.", "error")
			http.Redirect(w, r, fmt.Sprintf("/edit/%d", ratingID), http.StatusSeeOther)
			return
		}
		if err != nil {
			slog.Error("Failed to store photo", "error", err)
			http.Error(w, "Failed to store photo", http.StatusInternalServerError)
			return
		}

		// Only swap the photo when a new one arrived.
		oldPhoto := ""
		if photo != "" {
			oldPhoto = rating.PhotoPath
			rating.PhotoPath = photo
		}

		if err := app.updateRating(rating); err != nil {
			slog.Error("Failed to update rating", "rating_id", ratingID, "error", err)
			http.Error(w, "Failed to update rating", http.StatusInternalServerError)
			return
		}
		if oldPhoto != "" {
			app.removePhoto(oldPhoto)
		}

		slog.Info("Rating updated", "user_id", user.UserID, "rating_id", ratingID, "score", rating.Score)
		app.addFlash(w, r, fmt.Sprintf("Updated! Score: %.1f", rating.Score), "success")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page := EditPageData{
		User:    user,
		Rating:  rating,
		Flashes: app.popFlashes(w, r),
	}
	err = app.Pages["edit"].ExecuteTemplate(w, "layout", page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (app *App) DeleteRatingHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ratingID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		app.addFlash(w, r, "Entry not found.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	rating, err := app.getRating(ratingID, user.UserID)
	if err != nil {
		slog.Error("Failed to load rating", "rating_id", ratingID, "error", err)
		http.Error(w, "Failed to load rating", http.StatusInternalServerError)
		return
	}
	if rating == nil {
		app.addFlash(w, r, "Entry not found.", "error")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := app.deleteRating(ratingID, user.UserID); err != nil {
		slog.Error("Failed to delete rating", "rating_id", ratingID, "error", err)
		http.Error(w, "Failed to delete rating", http.StatusInternalServerError)
		return
	}
	app.removePhoto(rating.PhotoPath)

	slog.Info("Rating deleted", "user_id", user.UserID, "rating_id", ratingID)
	app.addFlash(w, r, "Deleted entry.", "info")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type LeaderboardPageData struct {
	User       *models.User
	Pubs       []PubRank
	Q          string
	City       string
	MinRatings int
	Flashes    []Flash
}

func (app *App) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	user := app.getUserFromContext(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	minRatings := score.ClampInt(r.URL.Query().Get("min"), 1, 999)

	pubs, err := app.getLeaderboard(q, city, minRatings)
	if err != nil {
		slog.Error("Failed to load leaderboard", "error", err)
		http.Error(w, "Failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	page := LeaderboardPageData{
		User:       user,
		Pubs:       pubs,
		Q:          q,
		City:       city,
		MinRatings: minRatings,
		Flashes:    app.popFlashes(w, r),
	}
	err = app.Pages["leaderboard"].ExecuteTemplate(w, "layout", page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (app *App) getUserFromContext(r *http.Request) *models.User {
	user, ok := r.Context().Value("user").(*models.User)
	if !ok {
		return nil
	}
	return user
}

// fillRatingForm copies the submitted fields onto a rating and
// recomputes its score. Person falls back to the acting username when
// blank after trimming.
func fillRatingForm(rating *models.Rating, r *http.Request, username string) {
	person := strings.TrimSpace(r.FormValue("person"))
	if person == "" {
		person = username
	}
	rating.Person = person
	rating.PubName = strings.TrimSpace(r.FormValue("pub_name"))
	rating.City = strings.TrimSpace(r.FormValue("city"))
	rating.Notes = strings.TrimSpace(r.FormValue("notes"))

	rating.Presentation = score.ClampInt(r.FormValue("presentation"), 0, 10)
	rating.Coldness = score.ClampInt(r.FormValue("coldness"), 0, 10)
	rating.Head = score.ClampInt(r.FormValue("head"), 0, 10)
	rating.Taste = score.ClampInt(r.FormValue("taste"), 0, 10)
	rating.Score = score.Compute(rating.Presentation, rating.Coldness, rating.Head, rating.Taste)
}
