package main

import (
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pintlog/internal/models"
	"pintlog/internal/utils"
	"pintlog/internal/web"
)

var funcMap = template.FuncMap{
	"datetime": utils.FormatDate,
	"add1":     func(i int) int { return i + 1 },
}

func loadTemplate(files ...string) *template.Template {
	return template.Must(template.New("").Funcs(funcMap).ParseFiles(files...))
}

var pages = map[string]*template.Template{
	"register":    loadTemplate("templates/layout.html", "templates/register.html"),
	"login":       loadTemplate("templates/layout.html", "templates/login.html"),
	"index":       loadTemplate("templates/layout.html", "templates/index.html"),
	"edit":        loadTemplate("templates/layout.html", "templates/edit.html"),
	"leaderboard": loadTemplate("templates/layout.html", "templates/leaderboard.html"),
}

func main() {
	godotenv.Load()

	dsn := envOr("DATABASE_URL", "data/pintlog.db")
	uploadDir := envOr("UPLOAD_DIR", "uploads")
	secret := envOr("SECRET_KEY", "dev-secret-change-me")
	addr := envOr("ADDR", ":3000")

	db, err := connectDb(dsn)
	if err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Creates the tables on first run and attaches columns added in
	// later revisions (user_id, photo_path) to older databases.
	err = db.AutoMigrate(&models.User{}, &models.Rating{})
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   false, // true only on HTTPS
		SameSite: http.SameSiteLaxMode,
	}

	app := &web.App{
		DB:        db,
		Store:     store,
		Pages:     pages,
		UploadDir: uploadDir,
	}

	r := app.NewRouter()

	slog.Info("Starting server", "addr", addr)
	err = http.ListenAndServe(addr, r)
	if err != nil {
		log.Fatal(err)
	}
}

func connectDb(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	if dir := filepath.Dir(dsn); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
