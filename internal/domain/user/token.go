package user

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"visionx-go/internal/domain/authz"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the access/refresh token pair for the REST
// surface. It carries no state besides the signing key and lifetimes.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (t *TokenIssuer) Issue(u *User) (TokenPair, error) {
	access, err := t.sign(u, tokenTypeAccess, t.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := t.sign(u, tokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (t *TokenIssuer) sign(u *User, tokenType string, ttl time.Duration) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username:  u.Username,
		Role:      string(u.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(t.secret)
}

// VerifyAccess parses an access token and returns the principal it carries.
func (t *TokenIssuer) VerifyAccess(raw string) (authz.Principal, error) {
	return t.verify(raw, tokenTypeAccess)
}

// VerifyRefresh parses a refresh token and returns the principal it carries.
func (t *TokenIssuer) VerifyRefresh(raw string) (authz.Principal, error) {
	return t.verify(raw, tokenTypeRefresh)
}

func (t *TokenIssuer) verify(raw, wantType string) (authz.Principal, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return authz.Principal{}, ErrInvalidToken
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || tokenClaims.TokenType != wantType || tokenClaims.Subject == "" {
		return authz.Principal{}, ErrInvalidToken
	}

	role, err := authz.ParseRole(tokenClaims.Role)
	if err != nil {
		return authz.Principal{}, ErrInvalidToken
	}

	return authz.Principal{
		ID:       tokenClaims.Subject,
		Username: tokenClaims.Username,
		Role:     role,
	}, nil
}
