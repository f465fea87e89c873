// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"abacus/config"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds a hasher from the auth and password strength settings.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	var strength config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost creates a hasher with an explicit work factor.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithCost(cost int, strength config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy. The first failing rule is reported.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	switch {
	case h.strength.MinLength > 0 && length < h.strength.MinLength:
		return weakPassword("must be at least %d characters long", h.strength.MinLength)
	case h.strength.MaxLength > 0 && length > h.strength.MaxLength:
		return weakPassword("must be at most %d characters long", h.strength.MaxLength)
	case h.strength.RequireLowercase && !hasRune(password, unicode.IsLower):
		return weakPassword("must contain at least one lowercase letter")
	case h.strength.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return weakPassword("must contain at least one uppercase letter")
	case h.strength.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return weakPassword("must contain at least one number")
	case h.strength.RequireSpecial && !hasRune(password, isSpecial):
		return weakPassword("must contain at least one special character")
	}

	// bcrypt only looks at the first 72 bytes.
	if len(password) > 72 {
		return weakPassword("must not exceed 72 bytes")
	}

	return nil
}

func weakPassword(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails("password " + fmt.Sprintf(format, args...))
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
