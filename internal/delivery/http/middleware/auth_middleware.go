package middleware

import (
	"strings"

	"blog/internal/auth"
	deliverycontext "blog/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HeaderXAdminKey carries the static admin credential.
const HeaderXAdminKey = "X-Admin-Key"

// AuthMiddleware resolves request credentials into a verdict and enforces
// access policies on protected routes.
type AuthMiddleware struct {
	gate *auth.Gate
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(gate *auth.Gate) *AuthMiddleware {
	return &AuthMiddleware{gate: gate}
}

// ResolveVerdict classifies every request exactly once and stores the
// verdict in the request context. It never rejects: endpoints that accept
// anonymous readers run with the anonymous verdict, and the guard
// middlewares below enforce anything stricter.
func (m *AuthMiddleware) ResolveVerdict(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		adminKey := c.Request().Header.Get(HeaderXAdminKey)
		bearerToken := extractBearer(c.Request().Header.Get("Authorization"))

		deliverycontext.SetVerdict(c, m.gate.Resolve(adminKey, bearerToken))

		return next(c)
	}
}

// RequireAuthenticated rejects anonymous requests with 401.
// It must be used AFTER the ResolveVerdict middleware.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.RequireAuthenticated(deliverycontext.GetVerdict(c)); err != nil {
			return err
		}

		return next(c)
	}
}

// RequireAdmin rejects anonymous requests with 401 and authenticated
// non-admin requests with 403.
// It must be used AFTER the ResolveVerdict middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := auth.RequireAdmin(deliverycontext.GetVerdict(c)); err != nil {
			return err
		}

		return next(c)
	}
}

// extractBearer pulls the token out of an "Authorization: Bearer x" header.
// Anything not in Bearer form reads as no token.
func extractBearer(header string) string {
	if header == "" {
		return ""
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return strings.TrimSpace(token)
}
