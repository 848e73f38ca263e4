// Command seed populates an empty database with a few published sample
// posts so a fresh installation has content to browse.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"blog/config"
	"blog/internal/domain/lifecycle"
	"blog/internal/domain/repository"
	infraauth "blog/internal/infra/auth"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/infra/sanitize"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed failed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}

	hasher := infraauth.NewBcryptHasher(cfg)
	if err := postgres.Migrate(db, cfg, hasher, logger); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	posts := postgres.NewPostRepository(db)

	_, total, err := posts.List(ctx, repository.PostFilter{Page: 1, PerPage: 1, IncludeUnpublished: true})
	if err != nil {
		return err
	}
	if total > 0 {
		logger.Info("posts already present, nothing to seed", slog.Int64("count", total))

		return nil
	}

	sanitizer := sanitize.New()
	for _, post := range samplePosts() {
		post.Content = sanitizer.Sanitize(post.Content)
		if err := posts.Create(ctx, post); err != nil {
			return err
		}
		logger.Info("seeded post", slog.String("slug", post.Slug))
	}

	return nil
}
