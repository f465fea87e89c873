package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "abacus/internal/delivery/context"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/errors"
	"abacus/internal/usecase"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

const bearerPrefix = "bearer "

// AuthMiddleware guards routes that require a signed-in, active user.
type AuthMiddleware struct {
	users usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(users usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// Authenticate resolves the bearer access token to a stored, active user.
// Missing or unusable tokens and vanished accounts answer 401; inactive
// accounts answer 400.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		identity := m.users.ResolveIdentity(token)
		if identity == nil {
			return domainerrors.ErrUnauthorized
		}

		user, err := m.users.CurrentUser(c.Request().Context(), identity)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetCurrentUser(c, user)
		slogecho.AddCustomAttributes(c, slog.String("user_id", user.ID.String()))

		return next(c)
	}
}

// bearerToken extracts the token from an Authorization header. The scheme
// name is case-insensitive.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
