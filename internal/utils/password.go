package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// Hashes are stored as "scrypt:N:r:p$salt$hexdigest", the same format
// werkzeug writes, so databases created by the old app keep working.

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func genSalt(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("salt length must be at least 1")
	}

	out := make([]byte, length)
	limit := 256 - (256 % len(saltChars))
	for i := 0; i < length; {
		var b [1]byte
		if _, err := rand.Read(b[:]); err != nil {
			return "", fmt.Errorf("rand: %w", err)
		}
		if int(b[0]) >= limit {
			continue
		}
		out[i] = saltChars[int(b[0])%len(saltChars)]
		i++
	}
	return string(out), nil
}

func GeneratePasswordHash(password string) (string, error) {
	salt, err := genSalt(16)
	if err != nil {
		return "", err
	}

	dk, err := scrypt.Key([]byte(password), []byte(salt), 32768, 8, 1, 64)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("scrypt:32768:8:1$%s$%s", salt, hex.EncodeToString(dk)), nil
}

func CheckPasswordHash(hash string, password string) bool {
	parts := strings.SplitN(hash, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, hashHex := parts[0], parts[1], parts[2]

	m := strings.Split(method, ":")
	if len(m) != 4 || m[0] != "scrypt" {
		return false
	}
	N, err := strconv.Atoi(m[1])
	if err != nil || N <= 1 {
		return false
	}
	r, err := strconv.Atoi(m[2])
	if err != nil || r <= 0 {
		return false
	}
	p, err := strconv.Atoi(m[3])
	if err != nil || p <= 0 {
		return false
	}

	dk, err := scrypt.Key([]byte(password), []byte(salt), N, r, p, 64)
	if err != nil {
		return false
	}
	computed := hex.EncodeToString(dk)

	if len(computed) != len(hashHex) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashHex)) == 1
}
