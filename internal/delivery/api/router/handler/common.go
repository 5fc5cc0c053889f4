package handler

import (
	"net/http"
	"strings"
	"time"

	"sms/internal/delivery/api/response"
	"sms/internal/delivery/api/validator"
	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"
	domainerrors "sms/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs struct validation.
// On failure the error response has already been written and handled is true.
func bindAndValidate(c echo.Context, req any) (handled bool, err error) {
	if err := c.Bind(req); err != nil {
		return true, response.BindingError(c, "INVALID_INPUT", "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return true, response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), verr.Fields)
		}

		return true, response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	return false, nil
}

// currentIdentity returns the caller attached by the auth middleware.
func currentIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

// studentID returns the caller's Student profile id resolved by RequireStudentProfile.
func studentID(c echo.Context) (uuid.UUID, error) {
	identity, err := currentIdentity(c)
	if err != nil {
		return uuid.Nil, err
	}
	if identity.StudentID == nil {
		return uuid.Nil, domainerrors.ErrProfileMissing
	}

	return *identity.StudentID, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return parseUUID(name, c.Param(name))
}

// parseUUID parses a request field, reporting failures as a validation error on that field.
func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a UUID")
	}

	return id, nil
}

// optionalQueryUUID parses an optional UUID query parameter. An empty value yields nil.
func optionalQueryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.Errorf("%q is not a date", raw)
	}

	return t, nil
}

// parseOptionalDate is parseDate for optional fields. An empty value yields nil.
func parseOptionalDate(field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}

	return &t, nil
}
