// Package auth implements the authorization gate: the single decision
// function every protected endpoint consults to classify a request as
// anonymous, authenticated or admin.
package auth

import (
	"crypto/subtle"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/google/uuid"
)

// Gate resolves request credentials into a verdict. It holds only
// read-after-startup configuration and is safe for concurrent use; it never
// mutates identity state and performs no I/O.
type Gate struct {
	adminKey []byte
	tokens   service.TokenService
}

// NewGate is the constructor for Gate. An empty adminKey disables the
// static-key path entirely.
func NewGate(adminKey string, tokens service.TokenService) *Gate {
	return &Gate{
		adminKey: []byte(adminKey),
		tokens:   tokens,
	}
}

// Resolve classifies one request's credentials.
//
// The static admin key wins outright: when it matches, the verdict is admin
// with a synthetic identity and the token service is never consulted, even
// if a (possibly invalid) bearer token is also present. The static key must
// never be weaker than an admin-role token on any protected operation.
// Otherwise a valid bearer token yields the user verdict, elevated to admin
// only when the role claim is admin. Anything else is anonymous.
func (g *Gate) Resolve(adminKey, bearerToken string) entity.Verdict {
	if len(g.adminKey) > 0 && adminKey != "" {
		if subtle.ConstantTimeCompare([]byte(adminKey), g.adminKey) == 1 {
			return entity.Verdict{
				Level:    entity.AccessAdmin,
				UserID:   uuid.Nil,
				Username: entity.AdminUsername,
				Role:     entity.RoleAdmin,
			}
		}
	}

	if bearerToken != "" {
		claims, err := g.tokens.Verify(bearerToken)
		if err == nil {
			level := entity.AccessUser
			if claims.Role == entity.RoleAdmin {
				level = entity.AccessAdmin
			}

			return entity.Verdict{
				Level:    level,
				UserID:   claims.UserID,
				Username: claims.Username,
				Role:     claims.Role,
			}
		}
	}

	return entity.Anonymous()
}

// RequireAuthenticated is the gate policy for endpoints that need any
// logged-in identity. Anonymous verdicts are rejected with 401.
func RequireAuthenticated(v entity.Verdict) error {
	if !v.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

// RequireAdmin is the gate policy for admin-only endpoints. Anonymous
// verdicts get 401 (log in first); authenticated non-admin verdicts get
// 403. The two outcomes are never collapsed.
func RequireAdmin(v entity.Verdict) error {
	if !v.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !v.IsAdmin() {
		return domainerrors.ErrForbidden
	}

	return nil
}
