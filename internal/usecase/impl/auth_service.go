// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	tokens    service.TokenService
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		tokens:    tokens,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a session token. Unknown accounts
// and wrong passwords produce the same error so the response does not leak
// which usernames exist.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByIdentifier(ctx, input.Identifier)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.Password, foundUser.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		if err := userRepo.TouchLastLogin(ctx, foundUser.ID); err != nil {
			return errors.Wrap(err, "failed to record login")
		}

		user = foundUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("user logged in",
		slog.String("userID", user.ID.String()),
		slog.String("username", user.Username),
	)

	return &usecase.TokenOutput{
		Token:     token,
		ExpiresIn: int64(srv.tokens.AccessTokenTTL().Seconds()),
		User:      user,
	}, nil
}

// Refresh re-issues a token for claims that already passed verification.
// The account is re-read so a deleted user cannot keep extending a session.
func (srv *authService) Refresh(ctx context.Context, claims *service.Claims) (*usecase.TokenOutput, error) {
	if claims.UserID == uuid.Nil {
		// The static admin key never expires, so there is nothing to refresh.
		return nil, domainerrors.ErrForbidden.WrapMessage("no refreshable session is associated with the static admin key")
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrTokenInvalid
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokens.Refresh(claims)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh token")
	}

	return &usecase.TokenOutput{
		Token:     token,
		ExpiresIn: int64(srv.tokens.AccessTokenTTL().Seconds()),
		User:      user,
	}, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (srv *authService) ChangePassword(ctx context.Context, verdict entity.Verdict, input *usecase.ChangePasswordInput) error {
	if verdict.UserID == uuid.Nil {
		// The static admin key carries no account to rotate.
		return domainerrors.ErrForbidden.WrapMessage("no account is associated with the static admin key")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, verdict.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		return userRepo.UpdatePassword(ctx, user.ID, hash)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("password changed", slog.String("userID", verdict.UserID.String()))

	return nil
}

// Profile returns the account behind an authenticated verdict. The static
// admin key has no stored account, so it reads back as a synthetic admin.
func (srv *authService) Profile(ctx context.Context, verdict entity.Verdict) (*entity.User, error) {
	if verdict.UserID == uuid.Nil {
		return &entity.User{
			Username: entity.AdminUsername,
			Role:     entity.RoleAdmin,
		}, nil
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, verdict.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
