package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	mockRepo "blog/internal/mocks/repository"
	mockService "blog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.StubTransactionManager
	tokens    *mockService.MockTokenService
	hasher    *mockService.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewStubTransactionManager()
	tokens := &mockService.MockTokenService{}
	hasher := &mockService.MockPasswordHasher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authServiceFixtures{
		service:   NewAuthService(txManager, tokens, hasher, logger),
		txManager: txManager,
		tokens:    tokens,
		hasher:    hasher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$stored-hash",
		Role:         entity.RoleAuthor,
	}

	fx.txManager.Factory.Users.On("FindByIdentifier", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "secret", "$stored-hash").Return(true)
	fx.txManager.Factory.Users.On("TouchLastLogin", ctx, userID).Return(nil)
	fx.tokens.On("Issue", userID, "alice", entity.RoleAuthor).Return("signed-token", nil)
	fx.tokens.On("AccessTokenTTL").Return(time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	assert.Equal(t, user, out.User)
	fx.txManager.Factory.Users.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.txManager.Factory.Users.On("FindByIdentifier", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "$stored-hash"}

	fx.txManager.Factory.Users.On("FindByIdentifier", ctx, "alice").Return(user, nil)
	fx.hasher.On("Check", "wrong", "$stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	// Same error as an unknown account, so responses do not reveal
	// which usernames exist.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.txManager.Factory.Users.AssertNotCalled(t, "TouchLastLogin", mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Role: entity.RoleAuthor}
	claims := &service.Claims{UserID: userID, Username: "alice", Role: entity.RoleAuthor}

	fx.txManager.Factory.Users.On("FindByID", ctx, userID).Return(user, nil)
	fx.tokens.On("Refresh", claims).Return("fresh-token", nil)
	fx.tokens.On("AccessTokenTTL").Return(time.Hour)

	out, err := fx.service.Refresh(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", out.Token)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Refresh_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Username: "gone"}

	fx.txManager.Factory.Users.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Refresh(ctx, claims)

	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	fx.tokens.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestAuthService_Refresh_StaticKeyHasNoSession(t *testing.T) {
	fx := createTestAuthService(t)

	claims := &service.Claims{UserID: uuid.Nil, Username: entity.AdminUsername, Role: entity.RoleAdmin}

	_, err := fx.service.Refresh(context.Background(), claims)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.txManager.Factory.Users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	fx.tokens.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", PasswordHash: "$old-hash"}
	verdict := entity.Verdict{Level: entity.AccessUser, UserID: userID, Username: "alice"}

	fx.txManager.Factory.Users.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "old-pass", "$old-hash").Return(true)
	fx.hasher.On("Hash", "new-pass-123").Return("$new-hash", nil)
	fx.txManager.Factory.Users.On("UpdatePassword", ctx, userID, "$new-hash").Return(nil)

	err := fx.service.ChangePassword(ctx, verdict, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass-123",
	})

	require.NoError(t, err)
	fx.txManager.Factory.Users.AssertExpectations(t)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, PasswordHash: "$old-hash"}
	verdict := entity.Verdict{Level: entity.AccessUser, UserID: userID}

	fx.txManager.Factory.Users.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "wrong", "$old-hash").Return(false)

	err := fx.service.ChangePassword(ctx, verdict, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.txManager.Factory.Users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_StaticKeyVerdict(t *testing.T) {
	fx := createTestAuthService(t)

	verdict := entity.Verdict{Level: entity.AccessAdmin, Username: entity.AdminUsername, Role: entity.RoleAdmin}

	err := fx.service.ChangePassword(context.Background(), verdict, &usecase.ChangePasswordInput{
		CurrentPassword: "x",
		NewPassword:     "y-long-enough",
	})

	// The static key maps to no stored account.
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthService_Profile_TokenUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	fx.txManager.Factory.Users.On("FindByID", ctx, userID).Return(user, nil)

	got, err := fx.service.Profile(ctx, entity.Verdict{Level: entity.AccessUser, UserID: userID})

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Profile_StaticKeySynthetic(t *testing.T) {
	fx := createTestAuthService(t)

	verdict := entity.Verdict{Level: entity.AccessAdmin, Username: entity.AdminUsername, Role: entity.RoleAdmin}

	got, err := fx.service.Profile(context.Background(), verdict)

	require.NoError(t, err)
	assert.Equal(t, entity.AdminUsername, got.Username)
	assert.Equal(t, entity.RoleAdmin, got.Role)
	assert.Equal(t, uuid.Nil, got.ID)
	fx.txManager.Factory.Users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
