package utils

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the cost factor for bcrypt hashing
// 10 is recommended for production (takes ~100ms)
// 14 is very secure but slow (~1.5s)
const DefaultBcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	return string(bytes), err
}

// CheckPassword compares a candidate password against the stored credential.
// Seeded demo rows store plaintext and match by constant-time equality;
// a stored bcrypt hash is compared with bcrypt so hashed credentials can be
// rolled out without an API change.
func CheckPassword(password, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
