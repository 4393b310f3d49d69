package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trial-match/internal/core/domain"
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// Claims are the JWT claims issued by the identity provider. The subject
// carries the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type identityKey struct{}

// IdentityFrom returns the identity stored by the auth middleware.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) *Authenticator {
	return &Authenticator{secret: []byte(secret), issuer: issuer}
}

// Parse validates a raw token and extracts the identity.
func (a *Authenticator) Parse(raw string) (Identity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject: %w", err)
	}
	return Identity{UserID: id, Email: claims.Email}, nil
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", true
	}
	return token, true
}

func (h *Handler) authenticate(r *http.Request) (*http.Request, error) {
	raw, present := bearer(r)
	if !present {
		return r, nil
	}
	if raw == "" {
		return nil, domain.ErrUnauthenticated
	}
	id, err := h.auth.Parse(raw)
	if err != nil {
		h.logger.Debug("token rejected", "error", err)
		return nil, domain.ErrUnauthenticated
	}
	return r.WithContext(context.WithValue(r.Context(), identityKey{}, id)), nil
}

// optionalAuth attaches an identity when a bearer token is sent. A malformed
// or invalid token is still rejected.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed, err := h.authenticate(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, authed)
	})
}

func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authed, err := h.authenticate(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if _, ok := IdentityFrom(authed.Context()); !ok {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, authed)
	})
}
