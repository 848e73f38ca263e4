package auth

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"blog/config"
	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		SecretKey:      secret,
		AccessTokenTTL: ttl,
	}}

	svc, err := NewJWTService(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing", time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID, "editor", entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "editor", claims.Username)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired; expiry is
	// checked at verification time regardless of signature correctness.
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing", -time.Minute)

	token, err := svc.Issue(uuid.New(), "editor", entity.RoleAuthor)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t, "signing_key_number_one_for_testing", time.Hour)
	verifier := newTestTokenService(t, "signing_key_number_two_for_testing", time.Hour)

	token, err := issuer.Issue(uuid.New(), "editor", entity.RoleAuthor)
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing", time.Hour)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := newTestTokenService(t, "test_secret_key_very_long_for_testing", time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID, "editor", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(claims)
	require.NoError(t, err)

	newClaims, err := svc.Verify(refreshed)
	require.NoError(t, err)
	assert.Equal(t, userID, newClaims.UserID)
	assert.Equal(t, "editor", newClaims.Username)
	assert.Equal(t, entity.RoleAdmin, newClaims.Role)
	assert.False(t, newClaims.ExpiresAt.Before(claims.ExpiresAt.Time))
}

func TestJWTService_EphemeralKey(t *testing.T) {
	// With no configured key each service instance generates its own, so
	// tokens verify against the issuing instance and nothing else.
	first := newTestTokenService(t, "", time.Hour)
	second := newTestTokenService(t, "", time.Hour)

	token, err := first.Issue(uuid.New(), "editor", entity.RoleAuthor)
	require.NoError(t, err)

	_, err = first.Verify(token)
	assert.NoError(t, err)

	_, err = second.Verify(token)
	assert.Error(t, err)
}
