// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"blog/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the identity facts carried inside a session token.
type Claims struct {
	UserID   uuid.UUID   `json:"uid"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded session tokens.
// Tokens are stateless: validity is entirely determined by signature and
// expiry at verification time, with no server-side session table and no
// revocation list.
type TokenService interface {
	// Issue creates a signed token for the identity with a fresh
	// issued-at/expires-at window.
	Issue(userID uuid.UUID, username string, role entity.Role) (string, error)

	// Verify checks the token's signature and expiry against the current
	// time and returns its claims. Malformed, forged and expired tokens
	// all come back as an error, never a panic. Verify performs no I/O.
	Verify(tokenString string) (*Claims, error)

	// Refresh re-issues a token with the same identity and a fresh
	// window. The only requirement is that the presented claims came from
	// a token that was valid at call time; no password is re-checked, so
	// a stolen-but-valid token can be extended indefinitely. Mitigating
	// that is left to deployment policy (short TTLs, key rotation).
	Refresh(claims *Claims) (string, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
