package entity

import "github.com/google/uuid"

// TokenKind distinguishes short-lived access tokens from long-lived refresh tokens.
type TokenKind string

const (
	// TokenKindAccess authorizes API calls.
	TokenKindAccess TokenKind = "access"

	// TokenKindRefresh can only be exchanged for a new token pair.
	TokenKindRefresh TokenKind = "refresh"
)

// String returns the string representation of the TokenKind.
func (k TokenKind) String() string {
	return string(k)
}

// IsValid checks if the TokenKind is a valid value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindAccess, TokenKindRefresh:
		return true
	default:
		return false
	}
}

// Identity is the minimal caller information recovered from an access token.
// It carries no profile data; profiles are always loaded from storage.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
