// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"sms/config"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/service"
	"sms/internal/errors"
)

// tokenClaims is the wire form of entity.Claims.
type tokenClaims struct {
	Email string           `json:"email"`
	Role  entity.Role      `json:"role"`
	Type  entity.TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL := config.DefaultAccessTokenTTL
	refreshTTL := config.DefaultRefreshTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// Issue signs claims with secret. The token expires ttl after the current time.
func (s *jwtService) Issue(claims entity.Claims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret must not be empty")
	}
	now := s.now()
	tc := tokenClaims{
		Email: claims.Email,
		Role:  claims.Role,
		Type:  claims.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token against secret. Any failure collapses into ErrInvalidToken.
func (s *jwtService) Verify(token, secret string) (*entity.Claims, error) {
	if token == "" || secret == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	// jwt treats exp == now as valid; a token must still have time left.
	if !tc.ExpiresAt.After(s.now()) {
		return nil, domainerrors.ErrInvalidToken
	}

	subject, err := uuid.Parse(tc.Subject)
	if err != nil || !tc.Role.IsValid() {
		return nil, domainerrors.ErrInvalidToken
	}

	return &entity.Claims{
		Subject: subject,
		Email:   tc.Email,
		Role:    tc.Role,
		Type:    tc.Type,
	}, nil
}

// GenerateTokenPair creates a new access token and refresh token for the given claims.
func (s *jwtService) GenerateTokenPair(claims entity.Claims) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.IssueAccessToken(claims)
	if err != nil {
		return "", "", err
	}

	claims.Type = entity.TokenTypeRefresh
	refreshToken, err = s.Issue(claims, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *jwtService) IssueAccessToken(claims entity.Claims) (string, error) {
	claims.Type = entity.TokenTypeAccess
	return s.Issue(claims, s.accessSecret, s.accessTTL)
}

func (s *jwtService) VerifyAccessToken(token string) (*entity.Claims, error) {
	return s.Verify(token, s.accessSecret)
}

func (s *jwtService) VerifyRefreshToken(token string) (*entity.Claims, error) {
	return s.Verify(token, s.refreshSecret)
}
