package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds bcrypt parameters for account passwords. Pepper is an
// optional secret appended to every password before hashing; it lives only
// in the environment, so a database dump alone is not enough to crack hashes
// offline.
type PasswordConfig struct {
	Cost   int
	Pepper string
}

// NewPasswordConfig reads BCRYPT_COST (optional, default 12) and
// PASSWORD_PEPPER (optional, empty disables peppering).
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := 12
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		cost = n
	}
	// Below 10 is too cheap for real accounts; above 14 stalls login.
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{Cost: cost, Pepper: os.Getenv("PASSWORD_PEPPER")}, nil
}

// HashPassword hashes a peppered password with bcrypt.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored bcrypt hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
