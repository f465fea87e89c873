package service

import (
	"time"

	"abacus/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by every session token.
// The subject (sub) holds the user id as a string.
type Claims struct {
	Username string           `json:"username"`
	Type     entity.TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// IssueRequest describes a token to mint.
type IssueRequest struct {
	SubjectID string
	Username  string
	Kind      entity.TokenKind

	// TTL overrides the kind's default lifetime when non-zero.
	TTL time.Duration
}

// VerifyOptions tunes a single Verify call.
type VerifyOptions struct {
	SkipExpiry bool
}

// VerifyOption mutates VerifyOptions.
type VerifyOption func(*VerifyOptions)

// WithoutExpiryCheck accepts tokens whose exp claim is in the past.
func WithoutExpiryCheck() VerifyOption {
	return func(o *VerifyOptions) {
		o.SkipExpiry = true
	}
}

// TokenService issues and verifies signed session tokens.
// Access and refresh tokens are signed with different secrets, so a token of
// one kind never verifies as the other.
type TokenService interface {
	// Issue signs a token for the request.
	Issue(req IssueRequest) (string, error)

	// IssueFromClaims builds a token from a loose payload map holding "sub"
	// and optionally "username".
	IssueFromClaims(payload map[string]any, kind entity.TokenKind, ttl time.Duration) (string, error)

	// Verify checks signature, expiry and kind, returning the decoded claims.
	Verify(token string, expected entity.TokenKind, opts ...VerifyOption) (*Claims, error)

	// TTL returns the default lifetime of tokens of the given kind.
	TTL(kind entity.TokenKind) time.Duration
}
