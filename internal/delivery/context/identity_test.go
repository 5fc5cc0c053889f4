package context

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sms/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetIdentity_VisibleFromBothContexts(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	identity := &entity.Identity{AccountID: uuid.New(), Email: "alice@x.io", Role: entity.RoleStudent}
	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Same(t, identity, got)

	fromCtx, ok := IdentityFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Same(t, identity, fromCtx)
}
