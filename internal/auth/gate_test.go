package auth

import (
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// stubTokenService verifies tokens against a fixed table.
type stubTokenService struct {
	valid map[string]*service.Claims
}

func (s *stubTokenService) Issue(uuid.UUID, string, entity.Role) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) Verify(tokenString string) (*service.Claims, error) {
	if claims, ok := s.valid[tokenString]; ok {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func (s *stubTokenService) Refresh(*service.Claims) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) AccessTokenTTL() time.Duration {
	return time.Hour
}

func newTestGate(adminKey string) (*Gate, uuid.UUID) {
	userID := uuid.New()
	tokens := &stubTokenService{valid: map[string]*service.Claims{
		"user-token":  {UserID: userID, Username: "reader", Role: entity.RoleAuthor},
		"admin-token": {UserID: userID, Username: "boss", Role: entity.RoleAdmin},
	}}

	return NewGate(adminKey, tokens), userID
}

func TestGate_Resolve_Anonymous(t *testing.T) {
	gate, _ := newTestGate("top-secret")

	verdict := gate.Resolve("", "")

	assert.Equal(t, entity.AccessAnonymous, verdict.Level)
	assert.False(t, verdict.IsAuthenticated())
	assert.False(t, verdict.IsAdmin())
}

func TestGate_Resolve_StaticKey(t *testing.T) {
	gate, _ := newTestGate("top-secret")

	verdict := gate.Resolve("top-secret", "")

	assert.Equal(t, entity.AccessAdmin, verdict.Level)
	assert.Equal(t, uuid.Nil, verdict.UserID)
	assert.Equal(t, entity.AdminUsername, verdict.Username)
}

func TestGate_Resolve_StaticKeyBeatsInvalidBearer(t *testing.T) {
	// The static key path never consults the token service, so a garbage
	// bearer token alongside a correct key must still yield admin.
	gate, _ := newTestGate("top-secret")

	verdict := gate.Resolve("top-secret", "definitely-not-a-token")

	assert.Equal(t, entity.AccessAdmin, verdict.Level)
}

func TestGate_Resolve_WrongStaticKeyFallsThroughToToken(t *testing.T) {
	gate, userID := newTestGate("top-secret")

	verdict := gate.Resolve("wrong-key", "user-token")

	assert.Equal(t, entity.AccessUser, verdict.Level)
	assert.Equal(t, userID, verdict.UserID)
}

func TestGate_Resolve_AdminRoleToken(t *testing.T) {
	gate, _ := newTestGate("top-secret")

	verdict := gate.Resolve("", "admin-token")

	assert.Equal(t, entity.AccessAdmin, verdict.Level)
	assert.Equal(t, "boss", verdict.Username)
}

func TestGate_Resolve_InvalidToken(t *testing.T) {
	gate, _ := newTestGate("top-secret")

	verdict := gate.Resolve("", "expired-or-forged")

	assert.Equal(t, entity.AccessAnonymous, verdict.Level)
}

func TestGate_Resolve_EmptyAdminKeyDisablesStaticPath(t *testing.T) {
	gate, _ := newTestGate("")

	verdict := gate.Resolve("", "")
	assert.Equal(t, entity.AccessAnonymous, verdict.Level)

	// An empty configured key must not match an empty header.
	verdict = gate.Resolve("anything", "")
	assert.Equal(t, entity.AccessAnonymous, verdict.Level)
}

func TestGuards(t *testing.T) {
	anonymous := entity.Anonymous()
	user := entity.Verdict{Level: entity.AccessUser, Role: entity.RoleAuthor}
	admin := entity.Verdict{Level: entity.AccessAdmin, Role: entity.RoleAdmin}

	assert.ErrorIs(t, RequireAuthenticated(anonymous), domainerrors.ErrUnauthenticated)
	assert.NoError(t, RequireAuthenticated(user))
	assert.NoError(t, RequireAuthenticated(admin))

	assert.ErrorIs(t, RequireAdmin(anonymous), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, RequireAdmin(user), domainerrors.ErrForbidden)
	assert.NoError(t, RequireAdmin(admin))
}

func TestVisibilityFor(t *testing.T) {
	assert.Equal(t, entity.Visibility{}, entity.VisibilityFor(entity.Anonymous()))
	assert.Equal(t, entity.Visibility{}, entity.VisibilityFor(entity.Verdict{Level: entity.AccessUser}))
	assert.Equal(t,
		entity.Visibility{IncludeUnpublished: true, IncludeUnapproved: true},
		entity.VisibilityFor(entity.Verdict{Level: entity.AccessAdmin}),
	)
}
