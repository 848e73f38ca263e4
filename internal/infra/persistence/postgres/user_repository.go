package postgres

import (
	"context"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIdentifier retrieves a single user by username or email. Login
// accepts either, so a single lookup serves both.
func (repo *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by identifier")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// TouchLastLogin records a successful login timestamp.
func (repo *userRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("last_login_at", now).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record login time")
	}

	return nil
}

// Count returns the total number of user accounts.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		LastLoginAt:  data.LastLoginAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		LastLoginAt:  data.LastLoginAt,
	}
}
