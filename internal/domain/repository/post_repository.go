package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostFilter narrows and pages a post listing. Zero values mean "no filter".
type PostFilter struct {
	Category string
	Tag      string
	Page     int
	PerPage  int

	// IncludeUnpublished is set only for admin-verdict requests.
	IncludeUnpublished bool
}

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindBySlug retrieves a single post by its slug regardless of its
	// published state; visibility decisions belong to the usecase layer.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// List returns one page of posts, newest first, plus the total number
	// of posts matching the filter.
	List(ctx context.Context, filter PostFilter) ([]*entity.Post, int64, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// Update persists changes to an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post and, through the schema's cascade, its comments.
	Delete(ctx context.Context, slug string) error

	// SlugExists reports whether a post with the slug already exists.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// CategoryCounts returns category names with visible-post counts,
	// ordered by count descending.
	CategoryCounts(ctx context.Context, includeUnpublished bool) ([]entity.CategoryCount, error)
}
