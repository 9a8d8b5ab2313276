package utils

import (
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// AllowedPhotoExtensions is the set of photo file extensions accepted
// for upload, lowercased.
var AllowedPhotoExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"gif":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SecureFilename strips path components from a client-supplied
// filename and replaces anything outside [A-Za-z0-9._-] with an
// underscore. The result is safe to use inside the upload directory.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// PhotoExtension returns the lowercased extension of filename and
// whether it is an allowed photo type. Filenames without an extension
// are never allowed.
func PhotoExtension(filename string) (string, bool) {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	return ext, AllowedPhotoExtensions[ext]
}

// RandomPhotoName generates a globally unique stored name for an
// uploaded photo, preserving the (already validated) extension.
func RandomPhotoName(ext string) string {
	u := uuid.New()
	return hex.EncodeToString(u[:]) + "." + ext
}
