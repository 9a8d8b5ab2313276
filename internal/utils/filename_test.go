package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pint.jpg", "pint.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"my pint photo.png", "my_pint_photo.png"},
		{"café.png", "caf_.png"},
		{"...", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SecureFilename(tt.in), "input %q", tt.in)
	}
}

func TestPhotoExtension(t *testing.T) {
	ext, ok := PhotoExtension("pint.JPG")
	assert.True(t, ok)
	assert.Equal(t, "jpg", ext)

	for _, name := range []string{"pint.jpeg", "pint.png", "pint.webp", "pint.gif"} {
		_, ok := PhotoExtension(name)
		assert.True(t, ok, name)
	}

	for _, name := range []string{"pint", "pint.", "pint.pdf", "pint.exe", ""} {
		_, ok := PhotoExtension(name)
		assert.False(t, ok, name)
	}
}

func TestRandomPhotoName(t *testing.T) {
	a := RandomPhotoName("png")
	b := RandomPhotoName("png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.Len(t, a, 32+len(".png"))
}
