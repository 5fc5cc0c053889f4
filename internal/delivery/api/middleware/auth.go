package middleware

import (
	"strings"

	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer access tokens and enforces per-route role sets.
// Failures are returned as domain errors and rendered by ErrorMiddleware.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the access token and attaches the caller's identity to the request.
// Refresh tokens are rejected here because they are signed with a different secret.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthenticated.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.VerifyAccessToken(token)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
		}

		deliverycontext.SetIdentity(c, entity.IdentityFromClaims(claims))

		return next(c)
	}
}

// RequireRoles admits callers whose role is in roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRoles(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthenticated
			}
			if !allowed.Contains(identity.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// Guard authenticates the caller and, when roles are given, restricts access to them.
// Guard() with no roles admits any authenticated caller.
func (m *AuthMiddleware) Guard(roles ...entity.Role) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{m.Authenticate}
	if len(roles) > 0 {
		chain = append(chain, m.RequireRoles(roles...))
	}

	return chain
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
