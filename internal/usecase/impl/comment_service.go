package impl

import (
	"context"
	"log/slog"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager        repository.TransactionManager
	sanitizer        service.ContentSanitizer
	moderateComments bool
	logger           *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(
	txManager repository.TransactionManager,
	sanitizer service.ContentSanitizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CommentUsecase {
	return &commentService{
		txManager:        txManager,
		sanitizer:        sanitizer,
		moderateComments: cfg.Auth.ModerateComments,
		logger:           logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListForPost returns the post's assembled comment forest. A post outside
// the verdict's visibility reads as not found, the same as a missing one.
func (srv *commentService) ListForPost(ctx context.Context, verdict entity.Verdict, slug string) (*usecase.CommentThreadOutput, error) {
	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := findVisiblePost(ctx, repoFactory.PostRepo(), verdict, slug)
		if err != nil {
			return err
		}

		includeUnapproved := entity.VisibilityFor(verdict).IncludeUnapproved
		comments, err = repoFactory.CommentRepo().ListForPost(ctx, post.ID, includeUnapproved)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	roots, total := buildCommentForest(comments)

	return &usecase.CommentThreadOutput{
		Comments: roots,
		Total:    total,
	}, nil
}

// Create adds a comment to a post. The parent check and the insert share
// one transaction so a reply can never land under a vanished parent.
func (srv *commentService) Create(ctx context.Context, verdict entity.Verdict, slug string, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	comment := &entity.Comment{
		ParentID:    input.ParentID,
		AuthorName:  input.AuthorName,
		AuthorEmail: input.AuthorEmail,
		Content:     srv.sanitizer.Sanitize(input.Content),
		Approved:    !srv.moderateComments || verdict.IsAdmin(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		post, err := findVisiblePost(ctx, repoFactory.PostRepo(), verdict, slug)
		if err != nil {
			return err
		}
		comment.PostID = post.ID

		if input.ParentID != nil {
			commentRepo := repoFactory.CommentRepo()

			exists, err := commentRepo.ParentExists(ctx, *input.ParentID, post.ID)
			if err != nil {
				return errors.Wrap(err, "failed to check parent comment")
			}
			if !exists {
				return domainerrors.ErrParentCommentNotFound
			}
		}

		return repoFactory.CommentRepo().Create(ctx, comment)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("comment created",
		slog.String("commentID", comment.ID.String()),
		slog.String("postID", comment.PostID.String()),
		slog.Bool("approved", comment.Approved),
	)

	return comment, nil
}

// Approve marks a held comment as approved and returns its final state.
func (srv *commentService) Approve(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var comment *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()

		if err := commentRepo.Approve(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to approve comment")
		}

		found, err := commentRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload comment")
		}
		comment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("comment approved", slog.String("commentID", id.String()))

	return comment, nil
}

// Delete removes a comment; the schema cascades the removal to its replies.
func (srv *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CommentRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCommentNotFound) {
				return domainerrors.ErrCommentNotFound
			}

			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("comment deleted", slog.String("commentID", id.String()))

	return nil
}
