package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"abacus/config"
	"abacus/internal/delivery/http/middleware"
	"abacus/internal/delivery/http/response"
	"abacus/internal/delivery/http/router/handler"
	"abacus/internal/infra/auth"
	"abacus/internal/infra/persistence/model"
	"abacus/internal/infra/persistence/postgres"
	"abacus/internal/infra/pubsub"
	"abacus/internal/testutil"
	"abacus/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "SecurePass123"

type testServer struct {
	t    *testing.T
	echo *echo.Echo
	db   *gorm.DB
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		SecretKey: config.SecretKey{Access: "access-secret", Refresh: "refresh-secret"},
		Auth: &config.AuthConfig{
			BcryptCost:      bcrypt.MinCost,
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Web.Enabled = true

	return cfg
}

// newTestServer wires the application the way cmd/abacus does, with SQLite
// in place of PostgreSQL and no event bus.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	var e *echo.Echo

	app := fxtest.New(t,
		fx.Supply(newTestConfig(), slog.New(slog.DiscardHandler), db),
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCalculationRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewUserService,
			impl.NewCalculationService,
			middleware.NewAuthMiddleware,
			handler.NewAuthHandler,
			handler.NewCalculationHandler,
			handler.NewPageHandler,
			NewEcho,
		),
		pubsub.Module,
		fx.Populate(&e),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return &testServer{t: t, echo: e, db: db}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) register(username string) *response.UserResponse {
	s.t.Helper()

	rec := s.do(nethttp.MethodPost, "/auth/register", "", map[string]string{
		"username":   username,
		"email":      username + "@example.com",
		"first_name": "Test",
		"last_name":  "User",
		"password":   testPassword,
	})
	require.Equal(s.t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	return decode[response.UserResponse](s.t, rec)
}

func (s *testServer) login(identifier string) *response.TokenResponse {
	s.t.Helper()

	rec := s.do(nethttp.MethodPost, "/auth/login", "", map[string]string{
		"username": identifier,
		"password": testPassword,
	})
	require.Equal(s.t, nethttp.StatusOK, rec.Code, rec.Body.String())

	return decode[response.TokenResponse](s.t, rec)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) *T {
	t.Helper()

	out := new(T)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	body := decode[response.Response](t, rec)
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(nethttp.MethodGet, "/health", "", nil)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	user := s.register("alice")
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)

	tokens := s.login("alice")
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, user.ID, tokens.UserID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), tokens.ExpiresAt, time.Minute)

	// Email works as the login identifier too.
	assert.Equal(t, user.ID, s.login("alice@example.com").UserID)

	rec := s.do(nethttp.MethodGet, "/auth/me", tokens.AccessToken, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	me := decode[response.UserResponse](t, rec)
	assert.Equal(t, user.ID, me.ID)
	assert.NotNil(t, me.LastLogin)
}

func TestServer_RegisterRejectsDuplicatesAndWeakInput(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")

	rec := s.do(nethttp.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "email": "other@example.com",
		"first_name": "A", "last_name": "B", "password": testPassword,
	})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))

	rec = s.do(nethttp.MethodPost, "/auth/register", "", map[string]string{
		"username": "bob", "email": "bob@example.com",
		"first_name": "B", "last_name": "C", "password": "alllowercase1",
	})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "PASSWORD_STRENGTH", errorCode(t, rec))

	rec = s.do(nethttp.MethodPost, "/auth/register", "", map[string]string{"username": "bob"})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
}

func TestServer_LoginFailures(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")

	for name, body := range map[string]map[string]string{
		"wrong password": {"username": "alice", "password": "WrongPass123"},
		"unknown user":   {"username": "nobody", "password": testPassword},
	} {
		t.Run(name, func(t *testing.T) {
			rec := s.do(nethttp.MethodPost, "/auth/login", "", body)

			assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
		})
	}
}

func TestServer_FormTokenAndRefresh(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")

	form := url.Values{"username": {"alice"}, "password": {testPassword}}
	req := httptest.NewRequest(nethttp.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	grant := decode[response.AccessTokenResponse](t, rec)
	assert.Equal(t, "bearer", grant.TokenType)
	assert.Equal(t, nethttp.StatusOK, s.do(nethttp.MethodGet, "/calculations", grant.AccessToken, nil).Code)

	tokens := s.login("alice")

	// A refresh token is not an access token, and vice versa.
	assert.Equal(t, nethttp.StatusUnauthorized, s.do(nethttp.MethodGet, "/calculations", tokens.RefreshToken, nil).Code)
	rec = s.do(nethttp.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": tokens.AccessToken})
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = s.do(nethttp.MethodPost, "/auth/refresh", "", map[string]string{"refresh_token": tokens.RefreshToken})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	refreshed := decode[response.TokenResponse](t, rec)
	assert.Equal(t, tokens.UserID, refreshed.UserID)
	assert.Equal(t, nethttp.StatusOK, s.do(nethttp.MethodGet, "/auth/me", refreshed.AccessToken, nil).Code)
}

func TestServer_CalculationLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")
	token := s.login("alice").AccessToken

	rec := s.do(nethttp.MethodPost, "/calculations", token, map[string]any{"type": "addition", "inputs": []float64{1, 2, 3.5}})
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	created := decode[response.CalculationResponse](t, rec)
	assert.Equal(t, "add", created.Type)
	assert.InDelta(t, 6.5, created.Result, 1e-9)

	rec = s.do(nethttp.MethodPost, "/calculations", token, map[string]any{"type": "divide", "inputs": []float64{100, 5, 2}})
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	rec = s.do(nethttp.MethodGet, "/calculations", token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	list := decode[[]response.CalculationResponse](t, rec)
	require.Len(t, *list, 2)
	assert.Equal(t, "divide", (*list)[0].Type, "newest first")

	path := "/calculations/" + created.ID.String()
	rec = s.do(nethttp.MethodGet, path, token, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[response.CalculationResponse](t, rec).ID)

	rec = s.do(nethttp.MethodPut, path, token, map[string]any{"inputs": []float64{10, 20}})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	updated := decode[response.CalculationResponse](t, rec)
	assert.InDelta(t, 30, updated.Result, 1e-9)
	assert.Equal(t, []float64{10, 20}, updated.Inputs)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	rec = s.do(nethttp.MethodDelete, path, token, nil)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = s.do(nethttp.MethodGet, path, token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Equal(t, "CALCULATION_NOT_FOUND", errorCode(t, rec))
}

func TestServer_CalculationErrors(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")
	token := s.login("alice").AccessToken

	rec := s.do(nethttp.MethodPost, "/calculations", token, map[string]any{"type": "divide", "inputs": []float64{1, 0}})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "DIVISION_BY_ZERO", errorCode(t, rec))

	rec = s.do(nethttp.MethodPost, "/calculations", token, map[string]any{"type": "modulo", "inputs": []float64{1, 2}})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OPERATION", errorCode(t, rec))

	rec = s.do(nethttp.MethodPost, "/calculations", token, map[string]any{"type": "add", "inputs": []float64{1}})
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	for _, method := range []string{nethttp.MethodGet, nethttp.MethodPut, nethttp.MethodDelete} {
		rec = s.do(method, "/calculations/not-a-uuid", token, map[string]any{"inputs": []float64{1, 2}})
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code, method)
		assert.Equal(t, "INVALID_ID", errorCode(t, rec), method)
	}

	rec = s.do(nethttp.MethodGet, "/calculations/"+uuid.NewString(), token, nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestServer_CalculationsAreOwnerScoped(t *testing.T) {
	s := newTestServer(t)
	s.register("alice")
	s.register("bob")
	alice := s.login("alice").AccessToken
	bob := s.login("bob").AccessToken

	rec := s.do(nethttp.MethodPost, "/calculations", alice, map[string]any{"type": "multiply", "inputs": []float64{2, 3, 4}})
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	path := "/calculations/" + decode[response.CalculationResponse](t, rec).ID.String()

	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodGet, path, bob, nil).Code)
	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodPut, path, bob, map[string]any{"inputs": []float64{1, 1}}).Code)
	assert.Equal(t, nethttp.StatusNotFound, s.do(nethttp.MethodDelete, path, bob, nil).Code)

	rec = s.do(nethttp.MethodGet, "/calculations", bob, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(nethttp.MethodGet, path, alice, nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.InDelta(t, 24, decode[response.CalculationResponse](t, rec).Result, 1e-9)
}

func TestServer_AuthRequired(t *testing.T) {
	s := newTestServer(t)

	for _, token := range []string{"", "not-a-jwt"} {
		rec := s.do(nethttp.MethodGet, "/calculations", token, nil)
		assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
}

func TestServer_InactiveUserRejected(t *testing.T) {
	s := newTestServer(t)
	user := s.register("alice")
	token := s.login("alice").AccessToken

	require.NoError(t, s.db.Model(&model.UserModel{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	rec := s.do(nethttp.MethodGet, "/calculations", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "INACTIVE_USER", errorCode(t, rec))

	rec = s.do(nethttp.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestServer_Pages(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/", "/login", "/register", "/dashboard", "/dashboard/view/abc", "/dashboard/edit/abc"} {
		rec := s.do(nethttp.MethodGet, path, "", nil)
		assert.Equal(t, nethttp.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML, path)
	}

	rec := s.do(nethttp.MethodGet, "/static/js/app.js", "", nil)
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = s.do(nethttp.MethodGet, "/static/missing.js", "", nil)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
