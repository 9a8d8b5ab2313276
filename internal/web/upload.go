package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"pintlog/internal/utils"
)

// Whole request body, photo included.
const maxUploadBytes = 12 << 20

var errPhotoType = errors.New("photo extension not allowed")

// parseRatingForm caps the request body at maxUploadBytes and parses
// it. Plain urlencoded posts (no photo) pass through too. Returns
// false when the response has already been written.
func (app *App) parseRatingForm(w http.ResponseWriter, r *http.Request) bool {
	if r.ContentLength > maxUploadBytes {
		http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(1 << 20)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return true
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		http.Error(w, "Upload too large", http.StatusRequestEntityTooLarge)
	} else {
		http.Error(w, "Invalid form", http.StatusBadRequest)
	}
	return false
}

// savePhoto stores the optional "photo" upload under a random unique
// name and returns that name. No file supplied means ("", nil); a
// disallowed extension means errPhotoType.
func (app *App) savePhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		// Missing file, or a form without a multipart body.
		return "", nil
	}
	defer file.Close()

	if header.Filename == "" {
		return "", nil
	}
	if _, ok := utils.PhotoExtension(header.Filename); !ok {
		return "", errPhotoType
	}

	ext, ok := utils.PhotoExtension(utils.SecureFilename(header.Filename))
	if !ok {
		return "", errPhotoType
	}
	name := utils.RandomPhotoName(ext)

	if err := os.MkdirAll(app.UploadDir, 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(filepath.Join(app.UploadDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return name, nil
}

// removePhoto deletes a stored photo, tolerating one that is already
// gone.
func (app *App) removePhoto(name string) {
	if name == "" {
		return
	}
	err := os.Remove(filepath.Join(app.UploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove photo", "photo", name, "error", err)
	}
}

// UploadsHandler streams a stored photo back to a logged-in user.
func (app *App) UploadsHandler(w http.ResponseWriter, r *http.Request) {
	if app.getUserFromContext(r) == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	filename := chi.URLParam(r, "filename")
	safe := utils.SecureFilename(filename)
	if safe == "" || safe != filename {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(app.UploadDir, safe))
}
