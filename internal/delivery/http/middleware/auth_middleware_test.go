package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog/internal/auth"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	tokens map[string]*service.Claims
}

func (s *stubTokenService) Issue(uuid.UUID, string, entity.Role) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) Verify(tokenString string) (*service.Claims, error) {
	if claims, ok := s.tokens[tokenString]; ok {
		return claims, nil
	}

	return nil, errors.New("token is invalid")
}

func (s *stubTokenService) Refresh(*service.Claims) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) AccessTokenTTL() time.Duration {
	return time.Hour
}

func newTestServer(t *testing.T) (*echo.Echo, *AuthMiddleware) {
	t.Helper()

	tokens := &stubTokenService{tokens: map[string]*service.Claims{
		"user-token":  {UserID: uuid.New(), Username: "alice", Role: entity.RoleAuthor},
		"admin-token": {UserID: uuid.New(), Username: "root", Role: entity.RoleAdmin},
	}}
	gate := auth.NewGate("sovereign-key", tokens)
	authMw := NewAuthMiddleware(gate)

	e := echo.New()
	e.Use(authMw.ResolveVerdict)
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e, authMw
}

func echoVerdict(c echo.Context) error {
	verdict := deliverycontext.GetVerdict(c)

	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": verdict.IsAuthenticated(),
		"admin":         verdict.IsAdmin(),
		"username":      verdict.Username,
	})
}

func doRequest(e *echo.Echo, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestResolveVerdict_Anonymous(t *testing.T) {
	e, _ := newTestServer(t)
	e.GET("/whoami", echoVerdict)

	rec := doRequest(e, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestResolveVerdict_StaticKey(t *testing.T) {
	e, _ := newTestServer(t)
	e.GET("/whoami", echoVerdict)

	rec := doRequest(e, map[string]string{HeaderXAdminKey: "sovereign-key"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin":true`)
	assert.Contains(t, rec.Body.String(), `"username":"admin"`)
}

func TestResolveVerdict_StaticKeyBeatsBadBearer(t *testing.T) {
	e, _ := newTestServer(t)
	e.GET("/whoami", echoVerdict)

	rec := doRequest(e, map[string]string{
		HeaderXAdminKey: "sovereign-key",
		"Authorization": "Bearer garbage",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin":true`)
}

func TestResolveVerdict_BearerToken(t *testing.T) {
	e, _ := newTestServer(t)
	e.GET("/whoami", echoVerdict)

	rec := doRequest(e, map[string]string{"Authorization": "Bearer user-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), `"admin":false`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestResolveVerdict_MalformedAuthorizationHeader(t *testing.T) {
	e, _ := newTestServer(t)
	e.GET("/whoami", echoVerdict)

	rec := doRequest(e, map[string]string{"Authorization": "user-token"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestRequireAuthenticated_RejectsAnonymous(t *testing.T) {
	e, authMw := newTestServer(t)
	e.GET("/whoami", echoVerdict, authMw.RequireAuthenticated)

	rec := doRequest(e, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestRequireAuthenticated_AcceptsUserToken(t *testing.T) {
	e, authMw := newTestServer(t)
	e.GET("/whoami", echoVerdict, authMw.RequireAuthenticated)

	rec := doRequest(e, map[string]string{"Authorization": "Bearer user-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_DistinguishesAnonymousFromForbidden(t *testing.T) {
	e, authMw := newTestServer(t)
	e.GET("/whoami", echoVerdict, authMw.RequireAdmin)

	anonymous := doRequest(e, nil)
	require.Equal(t, http.StatusUnauthorized, anonymous.Code)

	nonAdmin := doRequest(e, map[string]string{"Authorization": "Bearer user-token"})
	require.Equal(t, http.StatusForbidden, nonAdmin.Code)
	assert.Contains(t, nonAdmin.Body.String(), "FORBIDDEN")
}

func TestRequireAdmin_AcceptsAdminTokenAndStaticKey(t *testing.T) {
	e, authMw := newTestServer(t)
	e.GET("/whoami", echoVerdict, authMw.RequireAdmin)

	viaToken := doRequest(e, map[string]string{"Authorization": "Bearer admin-token"})
	assert.Equal(t, http.StatusOK, viaToken.Code)

	viaKey := doRequest(e, map[string]string{HeaderXAdminKey: "sovereign-key"})
	assert.Equal(t, http.StatusOK, viaKey.Code)
}
