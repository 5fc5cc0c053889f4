package auth

import (
	"strings"
	"testing"

	"sms/config"
	domainerrors "sms/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("pw124", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("pw123", "invalid_hash"))
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	hasher := newBcryptHasherWithCost(99)
	assert.Equal(t, config.DefaultBcryptCost, hasher.cost)
}

func TestBcryptHasher_DefaultPolicyIsLenient(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.NoError(t, hasher.ValidatePasswordStrength("pw123"))

	err := hasher.ValidatePasswordStrength("")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	err = hasher.ValidatePasswordStrength(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestBcryptHasher_ConfiguredPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Pässphräse123!"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		require.Error(t, err, tc.password)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), tc.expectedErr)
	}
}
