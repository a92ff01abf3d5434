// Package authutil holds password hashing and credential validation
// helpers shared by the signup and login handlers.
package authutil

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost factor the rest of the product line uses
// for account passwords.
const BcryptCost = 10

// MinPasswordLength is the shortest password signup/tenant-create accepts.
const MinPasswordLength = 8

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsValidEmail performs a shape check: one "@", non-empty local part,
// and a dot somewhere sensible in the domain. Deliverability is not our
// problem here; storage-level uniqueness is enforced by index.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
