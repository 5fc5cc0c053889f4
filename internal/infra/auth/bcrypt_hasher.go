package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"sms/config"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/service"
)

// bcrypt ignores everything after the 72nd byte.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := config.DefaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}
	h := newBcryptHasherWithCost(cost)
	if cfg.PasswordStrength != nil {
		h.policy = *cfg.PasswordStrength
	}

	return h
}

func newBcryptHasherWithCost(cost int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = config.DefaultBcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy. Without one, any
// non-empty password bcrypt can hash in full is accepted.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if password == "" {
		return domainerrors.ErrPasswordStrength.WithDetails("password must not be empty")
	}

	maxLength := bcryptMaxPasswordBytes
	if h.policy.MaxLength > 0 && h.policy.MaxLength < maxLength {
		maxLength = h.policy.MaxLength
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes long", maxLength))
	}
	if h.policy.MinLength > 0 && len([]rune(password)) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at least %d characters long", h.policy.MinLength))
	}
	if h.policy.RequireLowercase && !strings.ContainsFunc(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !strings.ContainsFunc(password, isSpecial) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	return nil
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
