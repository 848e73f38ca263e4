package postgres

import (
	"context"
	"log/slog"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate applies the schema and seeds the default admin account when the
// user table is empty. Called once at startup before the server accepts
// traffic.
func Migrate(db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return seedAdmin(ctx, db, cfg, hasher, logger)
}

// seedAdmin creates the initial admin user so a fresh deployment can log in.
func seedAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, hasher service.PasswordHasher, logger *slog.Logger) error {
	users := NewUserRepository(db)

	count, err := users.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return nil
	}

	seed := cfg.Auth.SeedAdmin
	if seed.Username == "" {
		seed.Username = "admin"
	}
	if seed.Email == "" {
		seed.Email = "admin@example.com"
	}
	if seed.Password == "" {
		seed.Password = "admin123"
		logger.Warn("seeding admin account with the default password, change it immediately",
			slog.String("username", seed.Username),
		)
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash seed admin password")
	}

	admin := &entity.User{
		Username:     seed.Username,
		Email:        seed.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to create seed admin")
	}

	logger.Info("seeded initial admin account", slog.String("username", seed.Username))

	return nil
}
