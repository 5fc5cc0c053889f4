package auth

import (
	"strings"
	"testing"
	"time"

	"sms/config"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "test_access_secret_key_very_long_for_testing"
	testRefreshSecret = "test_refresh_secret_key_very_long_for_testing"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: testAccessSecret, Refresh: testRefreshSecret},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

func testClaims() entity.Claims {
	return entity.Claims{
		Subject: uuid.New(),
		Email:   "alice@x.io",
		Role:    entity.RoleStudent,
	}
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	claims := testClaims()
	claims.Type = entity.TokenTypeAccess

	token, err := svc.Issue(claims, "k1", time.Hour)
	require.NoError(t, err)

	got, err := svc.Verify(token, "k1")
	require.NoError(t, err)
	assert.Equal(t, claims, *got)
}

func TestJWTService_VerifyWithOtherSecretFails(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(testClaims(), "k1", time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token, "k2")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_NonPositiveTTLNeverVerifies(t *testing.T) {
	svc := newTestJWTService(t)

	for _, ttl := range []time.Duration{0, -time.Second, -time.Hour} {
		token, err := svc.Issue(testClaims(), "k1", ttl)
		require.NoError(t, err)

		_, err = svc.Verify(token, "k1")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "ttl %s", ttl)
	}
}

func TestJWTService_ExpiredTokenFails(t *testing.T) {
	svc := newTestJWTService(t)
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(testClaims(), "k1", time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = svc.Verify(token, "k1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_MalformedTokens(t *testing.T) {
	svc := newTestJWTService(t)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		claims, err := svc.Verify(token, "k1")
		assert.Nil(t, claims)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), token)
	}
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)
	tc := tokenClaims{
		Role: entity.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, tc).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.Verify(unsigned, "k1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, tc).SignedString([]byte("k1"))
	require.NoError(t, err)
	_, err = svc.Verify(hs512, "k1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedPayloadFails(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(testClaims(), "k1", time.Hour)
	require.NoError(t, err)

	other, err := svc.Issue(entity.Claims{Subject: uuid.New(), Role: entity.RoleAdmin}, "k1", time.Hour)
	require.NoError(t, err)

	// Header and signature from one token, payload from another.
	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	forged := parts[0] + "." + otherParts[1] + "." + parts[2]

	_, err = svc.Verify(forged, "k1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TokenPairUsesSeparateSecrets(t *testing.T) {
	svc := newTestJWTService(t)
	claims := testClaims()

	access, refresh, err := svc.GenerateTokenPair(claims)
	require.NoError(t, err)

	accessClaims, err := svc.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, claims.Subject, accessClaims.Subject)
	assert.Equal(t, claims.Role, accessClaims.Role)

	refreshClaims, err := svc.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenTypeRefresh, refreshClaims.Type)
	assert.Equal(t, claims.Email, refreshClaims.Email)

	_, err = svc.VerifyAccessToken(refresh)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	_, err = svc.VerifyRefreshToken(access)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_ConfiguredTTLs(t *testing.T) {
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Access: testAccessSecret, Refresh: testRefreshSecret},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: 2 * time.Hour},
	})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.(*jwtService).refreshTTL)

	defaults := newTestJWTService(t)
	assert.Equal(t, config.DefaultAccessTokenTTL, defaults.accessTTL)
	assert.Equal(t, config.DefaultRefreshTokenTTL, defaults.refreshTTL)
}

func TestJWTService_InvalidSecrets(t *testing.T) {
	testCases := map[string]config.SecretKeyConfig{
		"both empty":    {},
		"access empty":  {Refresh: testRefreshSecret},
		"refresh empty": {Access: testAccessSecret},
		"equal":         {Access: testAccessSecret, Refresh: testAccessSecret},
	}

	for name, secrets := range testCases {
		t.Run(name, func(t *testing.T) {
			svc, err := NewJWTService(&config.Config{SecretKey: secrets})
			assert.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}
