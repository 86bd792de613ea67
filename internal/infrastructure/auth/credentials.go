package auth

import (
	"crypto/subtle"

	"github.com/crediario/backend/internal/infrastructure/config"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthenticator verifies back-office credentials against configuration
type AdminAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewAdminAuthenticator creates a new AdminAuthenticator
func NewAdminAuthenticator(cfg config.AdminConfig) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
	}
}

// Verify checks a username and password pair. Both checks run even on a
// username mismatch so response timing does not reveal which field failed.
func (a *AdminAuthenticator) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}

// HashPassword produces a bcrypt hash for configuration bootstrapping
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
