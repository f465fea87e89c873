package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "abacus/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		seen = deliverycontext.GetRequestIDFromContext(ctx)
		assert.NotNil(t, deliverycontext.GetLogger(ctx))
		assert.Equal(t, seen, deliverycontext.GetRequestID(c))

		return nil
	})
	require.NoError(t, handler(c))

	return seen, rec
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	seen, rec := runRequestID(t, "trace-abc-123")

	assert.Equal(t, "trace-abc-123", seen)
	assert.Equal(t, "trace-abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	cases := map[string]string{
		"missing":   "",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
		"has space": "two words",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			seen, rec := runRequestID(t, header)

			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
