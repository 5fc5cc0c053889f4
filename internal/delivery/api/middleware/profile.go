package middleware

import (
	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"
	"sms/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileMiddleware resolves the linked Student or Staff profile of the authenticated caller.
type ProfileMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewProfileMiddleware is the constructor for ProfileMiddleware.
func NewProfileMiddleware(authUC usecase.AuthUsecase) *ProfileMiddleware {
	return &ProfileMiddleware{authUC: authUC}
}

// RequireStudentProfile fails with PROFILE_MISSING unless the caller has a Student profile.
func (m *ProfileMiddleware) RequireStudentProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, func(identity *entity.Identity) bool { return identity.StudentID != nil })
}

// RequireStaffProfile fails with PROFILE_MISSING unless the caller has a Staff profile.
func (m *ProfileMiddleware) RequireStaffProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(next, func(identity *entity.Identity) bool { return identity.StaffID != nil })
}

func (m *ProfileMiddleware) require(next echo.HandlerFunc, linked func(*entity.Identity) bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return domainerrors.ErrUnauthenticated
		}

		resolved, err := m.authUC.Profile(c.Request().Context(), identity)
		if err != nil {
			return err
		}
		if !linked(resolved) {
			return domainerrors.ErrProfileMissing
		}

		deliverycontext.SetIdentity(c, resolved)

		return next(c)
	}
}
