package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hostel/backend/internal/domain/identity"
	"github.com/hostel/backend/internal/infrastructure/config"
)

// TokenKind distinguishes access tokens from refresh tokens. The two are
// signed with different keys and are never interchangeable.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidTokenType   = errors.New("invalid token type")
	ErrInvalidClaims      = errors.New("invalid token claims")
	ErrTokenNotYetValid   = errors.New("token is not yet valid")
	ErrMaxRefreshExceeded = errors.New("maximum refresh count exceeded")
	ErrTokenBlacklisted   = errors.New("token has been revoked")
)

// Claims is the payload of every hostel token. Refresh tokens leave Username
// and Privileged empty; the user is reloaded when they are exchanged.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string    `json:"uid"`
	Username   string    `json:"name,omitempty"`
	Privileged bool      `json:"prv,omitempty"`
	Kind       TokenKind `json:"kind"`
	Rotation   int       `json:"rot,omitempty"`
}

// Identity is the caller an access token speaks for.
func (c *Claims) Identity() (identity.Identity, error) {
	userID, err := c.UserUUID()
	if err != nil {
		return identity.Identity{}, err
	}
	return identity.Identity{UserID: userID, Username: c.Username, Privileged: c.Privileged}, nil
}

func (c *Claims) UserUUID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidClaims
	}
	return id, nil
}

// IssuedAtTime is zero when the token carries no iat.
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// Remaining is how long the token stays valid, never negative.
func (c *Claims) Remaining() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return max(time.Until(c.ExpiresAt.Time), 0)
}

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

type signingKey struct {
	secret []byte
	ttl    time.Duration
}

// JWTService signs and verifies HS256 tokens.
type JWTService struct {
	keys        map[TokenKind]signingKey
	issuer      string
	maxRotation int
	now         func() time.Time
}

// NewJWTService builds the service from configuration. Refresh tokens fall
// back to the access secret when no refresh secret is set.
func NewJWTService(cfg config.JWTConfig) *JWTService {
	refreshSecret := cfg.RefreshSecret
	if refreshSecret == "" {
		refreshSecret = cfg.Secret
	}
	return &JWTService{
		keys: map[TokenKind]signingKey{
			KindAccess:  {secret: []byte(cfg.Secret), ttl: cfg.AccessTokenExpiration},
			KindRefresh: {secret: []byte(refreshSecret), ttl: cfg.RefreshTokenExpiration},
		},
		issuer:      cfg.Issuer,
		maxRotation: cfg.MaxRefreshCount,
		now:         time.Now,
	}
}

// GenerateTokenPair issues a fresh access/refresh pair for an identity.
func (s *JWTService) GenerateTokenPair(id identity.Identity) (*TokenPair, error) {
	return s.pair(id, 0)
}

// RefreshTokenPair exchanges a refresh token for a new pair. id must be the
// freshly loaded owner of the token so privilege changes apply immediately.
func (s *JWTService) RefreshTokenPair(refreshToken string, id identity.Identity) (*TokenPair, error) {
	claims, err := s.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.UserID != id.UserID.String() {
		return nil, ErrInvalidClaims
	}
	if claims.Rotation >= s.maxRotation {
		return nil, ErrMaxRefreshExceeded
	}
	return s.pair(id, claims.Rotation+1)
}

func (s *JWTService) ValidateAccessToken(token string) (*Claims, error) {
	return s.parse(token, KindAccess)
}

func (s *JWTService) ValidateRefreshToken(token string) (*Claims, error) {
	return s.parse(token, KindRefresh)
}

func (s *JWTService) pair(id identity.Identity, rotation int) (*TokenPair, error) {
	now := s.now()

	access, accessExp, err := s.mint(KindAccess, now, &Claims{
		UserID:     id.UserID.String(),
		Username:   id.Username,
		Privileged: id.Privileged,
	})
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.mint(KindRefresh, now, &Claims{
		UserID:   id.UserID.String(),
		Rotation: rotation,
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:           access,
		RefreshToken:          refresh,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
		TokenType:             "Bearer",
	}, nil
}

// mint fills in the registered claims for kind and signs the result.
func (s *JWTService) mint(kind TokenKind, now time.Time, c *Claims) (string, time.Time, error) {
	key := s.keys[kind]
	exp := now.Add(key.ttl)
	c.Kind = kind
	c.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   c.UserID,
		Audience:  jwt.ClaimStrings{s.issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(key.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, exp, nil
}

func (s *JWTService) parse(token string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.keys[kind].secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return nil, ErrTokenNotYetValid
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.Kind != kind {
		return nil, ErrInvalidTokenType
	}
	if _, err := claims.UserUUID(); err != nil {
		return nil, err
	}
	return claims, nil
}
