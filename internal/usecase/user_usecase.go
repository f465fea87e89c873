// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"abacus/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=8,max=128"`

	// ConfirmPassword is optional; when present it must match Password.
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"omitempty,eqfield=Password"`
}

// LoginInput accepts either a username or an email as the identifier.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RefreshInput carries a refresh token to exchange for a new token pair.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Authenticate checks credentials and records the login time.
	Authenticate(ctx context.Context, identifier, password string) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// IssueAccessToken serves the OAuth2 password grant: access token only.
	IssueAccessToken(ctx context.Context, identifier, password string) (string, error)

	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// ResolveIdentity returns nil for any token that is not a valid access token.
	ResolveIdentity(token string) *entity.Identity

	// CurrentUser loads the profile behind an identity and rejects inactive accounts.
	CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}
