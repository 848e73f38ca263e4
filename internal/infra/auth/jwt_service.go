// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ephemeralKeyBytes is the size of the signing key generated when none is
// configured. 32 bytes = 256 bits.
const ephemeralKeyBytes = 32

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService. When no signing key is
// configured it generates an ephemeral one, which means every token issued
// before a restart becomes unverifiable afterwards. That is a documented
// limitation of keyless deployments, not something to patch silently.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TokenService, error) {
	secret := []byte(cfg.Auth.SecretKey)
	if len(secret) == 0 {
		generated := make([]byte, ephemeralKeyBytes)
		if _, err := rand.Read(generated); err != nil {
			return nil, errors.Wrap(err, "failed to generate ephemeral signing key")
		}
		secret = []byte(hex.EncodeToString(generated))

		logger.Warn("no signing key configured, generated an ephemeral one; issued tokens will not survive a restart")
	}

	return &jwtService{
		secret:    secret,
		accessTTL: cfg.Auth.AccessTokenTTL,
	}, nil
}

// Issue creates a signed HS256 token carrying the identity and role claims
// with a fresh issued-at/expires-at window.
func (s *jwtService) Issue(userID uuid.UUID, username string, role entity.Role) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token against the current signing key and the current
// time. Expiry is evaluated here, at verification, by the jwt library's
// claim validation.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Reject any token not signed with the HMAC family we issue.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// Refresh re-issues a token for the identity in the presented claims.
func (s *jwtService) Refresh(claims *service.Claims) (string, error) {
	if claims == nil {
		return "", errors.New("no claims to refresh")
	}

	return s.Issue(claims.UserID, claims.Username, claims.Role)
}

// AccessTokenTTL returns the configured token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
