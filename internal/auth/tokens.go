package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/inkwell/inkwell-backend/internal/blog"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carried by both access and refresh tokens. TokenType keeps a
// refresh token from being accepted on an authenticated endpoint.
type Claims struct {
	UserID    int64     `json:"uid"`
	Role      blog.Role `json:"role"`
	TokenType string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is the access/refresh pair returned by login and refresh.
type TokenPair struct {
	Access         string
	Refresh        string
	RefreshID      string
	RefreshExpires time.Duration
}

// Tokens mints and verifies the HS256-signed JWTs used for sessions.
type Tokens struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokens(secret string, accessTTL, refreshTTL time.Duration) *Tokens {
	return &Tokens{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints a fresh access/refresh token pair for the user. The
// refresh token carries a unique ID so the session store can revoke it.
func (t *Tokens) IssuePair(user *blog.User) (*TokenPair, error) {
	access, err := t.sign(user, tokenTypeAccess, t.accessTTL, "")
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshID := uuid.NewString()
	refresh, err := t.sign(user, tokenTypeRefresh, t.refreshTTL, refreshID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		Access:         access,
		Refresh:        refresh,
		RefreshID:      refreshID,
		RefreshExpires: t.refreshTTL,
	}, nil
}

func (t *Tokens) sign(user *blog.User, typ string, ttl time.Duration, id string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Role:      user.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// VerifyAccess parses an access token and returns its claims.
func (t *Tokens) VerifyAccess(raw string) (*Claims, error) {
	return t.verify(raw, tokenTypeAccess)
}

// VerifyRefresh parses a refresh token and returns its claims.
func (t *Tokens) VerifyRefresh(raw string) (*Claims, error) {
	return t.verify(raw, tokenTypeRefresh)
}

func (t *Tokens) verify(raw, typ string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != typ {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
