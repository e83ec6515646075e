package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"visionx-go/internal/domain/authz"
	userdomain "visionx-go/internal/domain/user"
	"visionx-go/pkg/logger"
)

type contextKey int

const principalKey contextKey = iota

// Authenticator resolves a bearer access token to the account it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*userdomain.User, error)
}

type JWTAuth struct {
	users Authenticator
	log   logger.Logger
}

func NewJWTAuth(users Authenticator, log logger.Logger) *JWTAuth {
	return &JWTAuth{users: users, log: log}
}

// Require rejects requests without a valid access token.
func (a *JWTAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		account, err := a.users.Authenticate(r.Context(), token)
		if err != nil {
			a.log.Debug("auth: token rejected", "error", err)
			unauthorized(w)
			return
		}

		ctx := WithPrincipal(r.Context(), account.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional resolves the caller when a token is present but lets anonymous
// requests through. A token that is present but invalid is still rejected,
// so a caller never silently downgrades to anonymous.
func (a *JWTAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.TrimSpace(header) == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			unauthorized(w)
			return
		}

		account, err := a.users.Authenticate(r.Context(), token)
		if err != nil {
			a.log.Debug("auth: token rejected", "error", err)
			unauthorized(w)
			return
		}

		ctx := WithPrincipal(r.Context(), account.Principal())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func WithPrincipal(ctx context.Context, p authz.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the caller identity. The zero Principal means
// an anonymous request.
func PrincipalFromContext(ctx context.Context) authz.Principal {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	if !ok {
		return authz.Principal{}
	}
	return p
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    "invalid_token",
			"message": "invalid token",
		},
	})
}
