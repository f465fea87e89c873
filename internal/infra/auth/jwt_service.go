package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"abacus/config"
	"abacus/internal/domain/entity"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/service"
	"abacus/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const unknownUsername = "unknown"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Default lifetime of access tokens.
	refreshTTL    time.Duration // Default lifetime of refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	accessTTL, refreshTTL := config.DefaultAccessTokenTTL, config.DefaultRefreshTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// Issue signs a token for the request. A negative TTL yields an already expired token.
func (s *jwtService) Issue(req service.IssueRequest) (string, error) {
	secret, ok := s.secretFor(req.Kind)
	if !ok {
		return "", domainerrors.ErrTokenIssueFailed.WithDetails(fmt.Sprintf("unknown token kind %q", req.Kind))
	}
	if req.SubjectID == "" {
		return "", domainerrors.ErrTokenIssueFailed.WithDetails("subject is required")
	}

	ttl := req.TTL
	if ttl == 0 {
		ttl = s.TTL(req.Kind)
	}
	username := req.Username
	if username == "" {
		username = unknownUsername
	}

	jti, err := newTokenID()
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	issuedAt := s.now().UTC()
	claims := &service.Claims{
		Username: username,
		Type:     req.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.SubjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
			ID:        jti,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return signed, nil
}

// IssueFromClaims reads "sub" and "username" from a payload map.
func (s *jwtService) IssueFromClaims(payload map[string]any, kind entity.TokenKind, ttl time.Duration) (string, error) {
	sub, ok := payload["sub"]
	if !ok || sub == nil {
		return "", domainerrors.ErrTokenIssueFailed.WithDetails("payload has no sub")
	}

	var username string
	if v, ok := payload["username"]; ok && v != nil {
		username = fmt.Sprint(v)
	}

	return s.Issue(service.IssueRequest{
		SubjectID: fmt.Sprint(sub),
		Username:  username,
		Kind:      kind,
		TTL:       ttl,
	})
}

// Verify checks the signature against the expected kind's secret, then the kind tag.
func (s *jwtService) Verify(token string, expected entity.TokenKind, opts ...service.VerifyOption) (*service.Claims, error) {
	secret, ok := s.secretFor(expected)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid.WithDetails(fmt.Sprintf("unknown token kind %q", expected))
	}

	var options service.VerifyOptions
	for _, opt := range opts {
		opt(&options)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if options.SkipExpiry {
		parserOpts = append(parserOpts, jwt.WithoutClaimsValidation())
	} else {
		parserOpts = append(parserOpts, jwt.WithExpirationRequired())
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}

	if claims.Type != expected {
		return nil, domainerrors.ErrTokenTypeMismatch
	}
	if claims.Subject == "" {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("token has no subject")
	}

	return claims, nil
}

// TTL returns the default lifetime for the kind, or zero for an unknown kind.
func (s *jwtService) TTL(kind entity.TokenKind) time.Duration {
	switch kind {
	case entity.TokenKindAccess:
		return s.accessTTL
	case entity.TokenKindRefresh:
		return s.refreshTTL
	default:
		return 0
	}
}

func (s *jwtService) secretFor(kind entity.TokenKind) ([]byte, bool) {
	switch kind {
	case entity.TokenKindAccess:
		return s.accessSecret, true
	case entity.TokenKindRefresh:
		return s.refreshSecret, true
	default:
		return nil, false
	}
}

// newTokenID returns 16 random bytes as 32 hex characters.
func newTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
