package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// PostUsecase defines the interface for post-related business operations.
// Every read honors the caller's verdict: non-admin verdicts only ever see
// published posts, with no error raised for the downgrade.
type PostUsecase interface {
	// ListPosts returns one page of visible posts, newest first.
	ListPosts(ctx context.Context, verdict entity.Verdict, input *ListPostsInput) (*PostPageOutput, error)

	// GetPost returns a single visible post by slug.
	GetPost(ctx context.Context, verdict entity.Verdict, slug string) (*entity.Post, error)

	// CreatePost creates a post, deriving the slug from the title when
	// none is given.
	CreatePost(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// UpdatePost applies a partial update to a post.
	UpdatePost(ctx context.Context, slug string, input *UpdatePostInput) (*entity.Post, error)

	// DeletePost removes a post and its comments.
	DeletePost(ctx context.Context, slug string) error

	// Categories returns the visible category index with post counts.
	Categories(ctx context.Context, verdict entity.Verdict) ([]entity.CategoryCount, error)

	// ShareQR renders a QR code pointing at the post's public URL.
	ShareQR(ctx context.Context, verdict entity.Verdict, slug string) ([]byte, error)
}

// --- Input DTOs ---

// ListPostsInput narrows and pages the post listing.
type ListPostsInput struct {
	Category string `query:"category"`
	Tag      string `query:"tag"`
	Page     int    `query:"page"`
	PerPage  int    `query:"per_page"`
}

// CreatePostInput defines the data required to create a post. Only the
// title and content are mandatory; author, category, and published fall
// back to defaults when omitted.
type CreatePostInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	Slug          string `json:"slug" validate:"omitempty,max=220"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content" validate:"required"`
	Author        string `json:"author" validate:"omitempty,max=100"`
	Category      string `json:"category" validate:"max=100"`
	Tags          string `json:"tags"`
	FeaturedImage string `json:"featured_image" validate:"omitempty,url,max=500"`
	Published     *bool  `json:"published"`
}

// UpdatePostInput defines a partial post update; nil fields are unchanged.
type UpdatePostInput struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Excerpt       *string `json:"excerpt,omitempty"`
	Content       *string `json:"content,omitempty"`
	Author        *string `json:"author,omitempty" validate:"omitempty,max=100"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Tags          *string `json:"tags,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty" validate:"omitempty,url,max=500"`
	Published     *bool   `json:"published,omitempty"`
}

// --- Output DTOs ---

// PostPageOutput is one page of the post listing.
type PostPageOutput struct {
	Posts      []*entity.Post `json:"posts"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}
