package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// ListForPost returns the post's comments ordered by creation time
	// ascending. Unapproved comments are filtered out unless requested.
	// The ordering is what lets the tree builder run in a single pass.
	ListForPost(ctx context.Context, postID uuid.UUID, includeUnapproved bool) ([]*entity.Comment, error)

	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ParentExists reports whether a comment exists with the given ID on
	// the given post. Checked before every insertion carrying a parent
	// reference; the tree builder relies on this write-time invariant.
	ParentExists(ctx context.Context, parentID, postID uuid.UUID) (bool, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Approve marks a comment as approved.
	Approve(ctx context.Context, id uuid.UUID) error

	// Delete removes a comment and, through the schema's cascade, its replies.
	Delete(ctx context.Context, id uuid.UUID) error
}
