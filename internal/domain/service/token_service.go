package service

import (
	"time"

	"sms/internal/domain/entity"
)

// TokenService signs and verifies the two classes of bearer token.
// Every verification failure is reported as domainerrors.ErrInvalidToken.
type TokenService interface {
	// Issue signs claims with secret, expiring ttl from now.
	Issue(claims entity.Claims, secret string, ttl time.Duration) (string, error)

	// Verify checks signature and expiry of token against secret.
	Verify(token, secret string) (*entity.Claims, error)

	// GenerateTokenPair issues an access token and a refresh token, each with its own secret.
	GenerateTokenPair(claims entity.Claims) (accessToken string, refreshToken string, err error)

	// IssueAccessToken issues an access token only.
	IssueAccessToken(claims entity.Claims) (string, error)

	VerifyAccessToken(token string) (*entity.Claims, error)
	VerifyRefreshToken(token string) (*entity.Claims, error)
}
