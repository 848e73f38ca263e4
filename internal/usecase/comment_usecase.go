package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// ListForPost returns the post's comment forest plus the flat comment
	// count. Post visibility follows the verdict; an invisible post reads
	// as not found.
	ListForPost(ctx context.Context, verdict entity.Verdict, slug string) (*CommentThreadOutput, error)

	// Create adds a comment to a post, optionally as a reply.
	Create(ctx context.Context, verdict entity.Verdict, slug string, input *CreateCommentInput) (*entity.Comment, error)

	// Approve marks a held comment as approved.
	Approve(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Delete removes a comment and its whole reply subtree.
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateCommentInput defines the data required to create a comment.
type CreateCommentInput struct {
	AuthorName  string     `json:"author_name" validate:"required,max=100"`
	AuthorEmail string     `json:"author_email" validate:"required,email,max=255"`
	Content     string     `json:"content" validate:"required,max=5000"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

// --- Output DTOs ---

// CommentThreadOutput carries the assembled comment forest. Total is the
// flat count of comments the query returned, which can exceed the number
// reachable through the forest when orphaned subtrees were dropped.
type CommentThreadOutput struct {
	Comments []*entity.CommentNode `json:"comments"`
	Total    int                   `json:"total"`
}
