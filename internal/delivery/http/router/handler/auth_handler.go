package handler

import (
	"net/http"
	"strings"

	"abacus/internal/delivery/http/response"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves registration, sign-in and the current-user profile.
type AuthHandler struct {
	users usecase.UserUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(users usecase.UserUsecase) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates an account and returns its public profile.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.NewUserResponse(user))
}

// Login exchanges a username (or email) and password for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	out, err := h.users.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewTokenResponse(out.AccessToken, out.RefreshToken, out.ExpiresAt, out.User))
}

// Token is the OAuth2 password grant: form-encoded credentials in, access token out.
func (h *AuthHandler) Token(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return domainerrors.ErrValidationFailed.WithDetails("username and password form fields are required")
	}

	token, err := h.users.IssueAccessToken(c.Request().Context(), username, password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &response.AccessTokenResponse{
		AccessToken: token,
		TokenType:   response.TokenTypeBearer,
	})
}

// Refresh exchanges a refresh token for a new token pair.
func (h *AuthHandler) Refresh(c echo.Context) error {
	input := new(usecase.RefreshInput)
	if err := bindAndValidate(c, input); err != nil {
		return err
	}

	out, err := h.users.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.NewTokenResponse(out.AccessToken, out.RefreshToken, out.ExpiresAt, out.User))
}

// Me returns the authenticated caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.NewUserResponse(user))
}
