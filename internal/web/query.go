package web

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"pintlog/internal/models"
)

func (app *App) getUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := app.DB.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (app *App) getUserById(userID int) (*models.User, error) {
	var u models.User
	err := app.DB.First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// addUser inserts a new account. A duplicate username surfaces as
// gorm.ErrDuplicatedKey via the unique index on username.
func (app *App) addUser(username string, passwordHash string) error {
	u := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return app.DB.Create(&u).Error
}

// getRecentRatings returns up to limit of the user's ratings, newest
// first; ties on created_at fall back to insertion order.
func (app *App) getRecentRatings(userID int, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	err := app.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&ratings).Error
	return ratings, err
}

// getRating loads one rating scoped to its owner. Someone else's
// rating comes back as nil, same as a missing one.
func (app *App) getRating(ratingID int, userID int) (*models.Rating, error) {
	var rating models.Rating
	err := app.DB.Where("id = ? AND user_id = ?", ratingID, userID).First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (app *App) insertRating(rating *models.Rating) error {
	return app.DB.Create(rating).Error
}

func (app *App) updateRating(rating *models.Rating) error {
	return app.DB.Save(rating).Error
}

func (app *App) deleteRating(ratingID int, userID int) error {
	return app.DB.Where("id = ? AND user_id = ?", ratingID, userID).Delete(&models.Rating{}).Error
}

// PubRank is one leaderboard row: all ratings sharing a
// (pub name, city) pair collapsed into aggregate scores.
type PubRank struct {
	PubName   string
	City      string
	AvgScore  float64
	BestScore float64
	Ratings   int
}

// getLeaderboard groups every rating, regardless of owner, by pub and
// city. q filters pub names by substring, city by exact match, both
// case-insensitive; groups with fewer than minRatings entries drop out.
func (app *App) getLeaderboard(q string, city string, minRatings int) ([]PubRank, error) {
	tx := app.DB.Model(&models.Rating{}).
		Select(`COALESCE(pub_name, '') AS pub_name,
			COALESCE(city, '') AS city,
			ROUND(CAST(AVG(score) AS NUMERIC), 2) AS avg_score,
			MAX(score) AS best_score,
			COUNT(*) AS ratings`)

	if q != "" {
		tx = tx.Where("LOWER(COALESCE(pub_name, '')) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if city != "" {
		tx = tx.Where("LOWER(COALESCE(city, '')) = ?", strings.ToLower(city))
	}

	var pubs []PubRank
	err := tx.
		Group("COALESCE(pub_name, ''), COALESCE(city, '')").
		Having("COUNT(*) >= ?", minRatings).
		Order("avg_score DESC, best_score DESC, ratings DESC").
		Limit(50).
		Scan(&pubs).Error
	return pubs, err
}
