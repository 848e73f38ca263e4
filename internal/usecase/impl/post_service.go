package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"
	"blog/internal/util"

	"github.com/pkg/errors"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50

	defaultAuthor   = "Admin"
	defaultCategory = "General"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	sanitizer service.ContentSanitizer
	qrcodes   service.QRCodeService
	baseURL   string
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	sanitizer service.ContentSanitizer,
	qrcodes service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PostUsecase {
	baseURL := cfg.HTTP.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	}

	return &postService{
		txManager: txManager,
		sanitizer: sanitizer,
		qrcodes:   qrcodes,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPosts returns one page of posts visible to the verdict, newest first.
func (srv *postService) ListPosts(ctx context.Context, verdict entity.Verdict, input *usecase.ListPostsInput) (*usecase.PostPageOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	filter := repository.PostFilter{
		Category:           input.Category,
		Tag:                input.Tag,
		Page:               page,
		PerPage:            perPage,
		IncludeUnpublished: entity.VisibilityFor(verdict).IncludeUnpublished,
	}

	var (
		posts []*entity.Post
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		posts, total, err = repoFactory.PostRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list posts")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return &usecase.PostPageOutput{
		Posts:      posts,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// GetPost returns a single post by slug. A post outside the verdict's
// visibility reads as not found, indistinguishable from a missing one.
func (srv *postService) GetPost(ctx context.Context, verdict entity.Verdict, slug string) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findVisiblePost(ctx, repoFactory.PostRepo(), verdict, slug)
		if err != nil {
			return err
		}
		post = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// CreatePost creates a post. The slug defaults to a slugified title; a
// taken slug gets a timestamp suffix instead of failing. Omitted author,
// category, and published fields take their defaults.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Title)
	} else {
		slug = util.Slugify(slug)
	}
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title yields an empty slug")
	}

	author := input.Author
	if author == "" {
		author = defaultAuthor
	}
	category := input.Category
	if category == "" {
		category = defaultCategory
	}
	published := true
	if input.Published != nil {
		published = *input.Published
	}

	post := &entity.Post{
		Title:         input.Title,
		Slug:          slug,
		Excerpt:       input.Excerpt,
		Content:       srv.sanitizer.Sanitize(input.Content),
		Author:        author,
		Category:      category,
		Tags:          util.JoinTags(util.SplitTags(input.Tags)),
		FeaturedImage: input.FeaturedImage,
		Published:     published,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		taken, err := postRepo.SlugExists(ctx, post.Slug)
		if err != nil {
			return errors.Wrap(err, "failed to check slug")
		}
		if taken {
			post.Slug = fmt.Sprintf("%s-%d", post.Slug, time.Now().Unix())
		}

		return postRepo.Create(ctx, post)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("post created",
		slog.String("slug", post.Slug),
		slog.Bool("published", post.Published),
	)

	return post, nil
}

// UpdatePost applies a partial update. The slug never changes on update so
// published permalinks stay stable.
func (srv *postService) UpdatePost(ctx context.Context, slug string, input *usecase.UpdatePostInput) (*entity.Post, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		found, err := postRepo.FindBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to find post")
		}

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Excerpt != nil {
			found.Excerpt = *input.Excerpt
		}
		if input.Content != nil {
			found.Content = srv.sanitizer.Sanitize(*input.Content)
		}
		if input.Author != nil {
			found.Author = *input.Author
		}
		if input.Category != nil {
			found.Category = *input.Category
		}
		if input.Tags != nil {
			found.Tags = util.JoinTags(util.SplitTags(*input.Tags))
		}
		if input.FeaturedImage != nil {
			found.FeaturedImage = *input.FeaturedImage
		}
		if input.Published != nil {
			found.Published = *input.Published
		}

		if err := postRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		post = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("post updated", slog.String("slug", slug))

	return post, nil
}

// DeletePost removes a post; its comments cascade away with it.
func (srv *postService) DeletePost(ctx context.Context, slug string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PostRepo().Delete(ctx, slug); err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return domainerrors.ErrPostNotFound
			}

			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("post deleted", slog.String("slug", slug))

	return nil
}

// Categories returns the category index restricted to the verdict's
// visibility.
func (srv *postService) Categories(ctx context.Context, verdict entity.Verdict) ([]entity.CategoryCount, error) {
	var counts []entity.CategoryCount

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		counts, err = repoFactory.PostRepo().CategoryCounts(ctx, entity.VisibilityFor(verdict).IncludeUnpublished)
		if err != nil {
			return errors.Wrap(err, "failed to count categories")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// ShareQR renders a QR code pointing at the post's public URL. Visibility
// follows the same rule as GetPost.
func (srv *postService) ShareQR(ctx context.Context, verdict entity.Verdict, slug string) ([]byte, error) {
	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findVisiblePost(ctx, repoFactory.PostRepo(), verdict, slug)
		if err != nil {
			return err
		}
		post = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.qrcodes.GenerateShareQR(fmt.Sprintf("%s/posts/%s", srv.baseURL, post.Slug))
}

// findVisiblePost looks up a post and applies the verdict's visibility.
// Shared with the comment service, which applies the same rule.
func findVisiblePost(ctx context.Context, postRepo repository.PostRepository, verdict entity.Verdict, slug string) (*entity.Post, error) {
	post, err := postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	if !post.Published && !entity.VisibilityFor(verdict).IncludeUnpublished {
		return nil, domainerrors.ErrPostNotFound
	}

	return post, nil
}
