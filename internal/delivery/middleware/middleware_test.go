package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sms/config"
	deliverycontext "sms/internal/delivery/context"
	"sms/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var seenInCtx string
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seenInCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seenInCtx)
	assert.Equal(t, seenInCtx, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", deliverycontext.GetRequestID(c))
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return echo.ErrNotFound
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_LogsAuthenticatedCaller(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	accountID := uuid.New()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/student/fees", nil), rec)

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		deliverycontext.SetIdentity(c, &entity.Identity{AccountID: accountID, Role: entity.RoleStudent})

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), `"account_id":"`+accountID.String()+`"`)
	assert.Contains(t, buf.String(), `"role":"student"`)
}
