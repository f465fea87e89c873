package response

import (
	"time"

	"abacus/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is the OAuth2 token_type returned with every token.
const TokenTypeBearer = "bearer"

// UserResponse is the public view of an account. The password hash never leaves the server.
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	IsActive   bool       `json:"is_active"`
	IsVerified bool       `json:"is_verified"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewUserResponse maps a user entity to its public view.
func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		LastLogin:  user.LastLogin,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// TokenResponse is returned by the JSON login and refresh endpoints.
type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
}

// NewTokenResponse flattens a token pair and the signed-in user.
func NewTokenResponse(accessToken, refreshToken string, expiresAt time.Time, user *entity.User) *TokenResponse {
	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    TokenTypeBearer,
		ExpiresAt:    expiresAt.UTC(),
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsActive:     user.IsActive,
		IsVerified:   user.IsVerified,
	}
}

// AccessTokenResponse is the OAuth2 password-grant body of /auth/token.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CalculationResponse is the public view of a calculation record.
type CalculationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Inputs    []float64 `json:"inputs"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCalculationResponse maps a calculation entity to its public view.
func NewCalculationResponse(calc *entity.Calculation) *CalculationResponse {
	inputs := calc.Inputs
	if inputs == nil {
		inputs = []float64{}
	}

	return &CalculationResponse{
		ID:        calc.ID,
		UserID:    calc.UserID,
		Type:      calc.Type.String(),
		Inputs:    inputs,
		Result:    calc.Result,
		CreatedAt: calc.CreatedAt,
		UpdatedAt: calc.UpdatedAt,
	}
}

// NewCalculationListResponse maps a list, rendering an empty list as [] rather than null.
func NewCalculationListResponse(calcs []*entity.Calculation) []*CalculationResponse {
	out := make([]*CalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		out = append(out, NewCalculationResponse(calc))
	}

	return out
}
