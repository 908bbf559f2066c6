package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// HashPassword hashes a plaintext password with HMAC-SHA256 keyed by the
// configured hashing secret, hex-encoded.
func HashPassword(secret, password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// ComparePassword verifies a plaintext password against its stored hash in
// constant time.
func ComparePassword(secret, hashed, plain string) bool {
	computed, err := HashPassword(secret, plain)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(hashed), []byte(computed))
}
