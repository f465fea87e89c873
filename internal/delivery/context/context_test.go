package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	_, err := uuid.Parse(GetRequestID(c))
	assert.NoError(t, err, "missing id falls back to a fresh uuid")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestCurrentUser(t *testing.T) {
	c := newEchoContext()

	_, ok := GetCurrentUser(c)
	assert.False(t, ok)
	_, ok = GetUserID(c)
	assert.False(t, ok)

	user := &entity.User{ID: uuid.New(), Username: "alice"}
	SetCurrentUser(c, user)

	got, ok := GetCurrentUser(c)
	require.True(t, ok)
	assert.Same(t, user, got)

	id, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, user.ID, id)
}
