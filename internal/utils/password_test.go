package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := GeneratePasswordHash("stout123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "scrypt:32768:8:1$"))
	assert.True(t, CheckPasswordHash(hash, "stout123"))
	assert.False(t, CheckPasswordHash(hash, "stout124"))
	assert.False(t, CheckPasswordHash(hash, ""))
}

func TestPasswordHashSalted(t *testing.T) {
	h1, err := GeneratePasswordHash("same")
	require.NoError(t, err)
	h2, err := GeneratePasswordHash("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCheckPasswordHashMalformed(t *testing.T) {
	assert.False(t, CheckPasswordHash("", "x"))
	assert.False(t, CheckPasswordHash("notascrypt$salt$digest", "x"))
	assert.False(t, CheckPasswordHash("scrypt:0:8:1$salt$digest", "x"))
	assert.False(t, CheckPasswordHash("scrypt:32768:8$salt$digest", "x"))
}

func TestCheckPasswordHashWerkzeugFormat(t *testing.T) {
	// Hashes must stay in werkzeug's scrypt format so existing
	// databases keep verifying.
	hash, err := GeneratePasswordHash("carlsberg")
	require.NoError(t, err)
	parts := strings.SplitN(hash, "$", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "scrypt:32768:8:1", parts[0])
	assert.Len(t, parts[1], 16)
	assert.Len(t, parts[2], 128)
}
