package context

import (
	"abacus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID stores the authenticated caller's id in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyCurrentUser stores the authenticated caller's profile in echo.Context.
	KeyCurrentUser ContextKey = "current_user"
)

// SetCurrentUser records the authenticated caller on the echo context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUserID), user.ID)
	c.Set(string(KeyCurrentUser), user)
}

// GetCurrentUser returns the caller stored by the auth middleware.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the caller's id stored by the auth middleware.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
