package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// ListForPost returns the post's comments ordered by creation time
// ascending. Parents always precede their replies in this ordering, which
// the thread assembler depends on.
func (repo *commentRepository) ListForPost(ctx context.Context, postID uuid.UUID, includeUnapproved bool) ([]*entity.Comment, error) {
	query := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC")

	if !includeUnapproved {
		query = query.Where("approved = ?", true)
	}

	var commentMs []*model.CommentModel
	if err := query.Find(&commentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).First(&commentM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ParentExists reports whether a comment with the given ID exists on the
// given post. The post check stops cross-post reply grafting.
func (repo *commentRepository) ParentExists(ctx context.Context, parentID, postID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND post_id = ?", parentID, postID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check parent comment")
	}

	return count > 0, nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrParentCommentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// Approve marks a comment as approved.
func (repo *commentRepository) Approve(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", id).
		Update("approved", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to approve comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment; replies cascade through the schema.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:          data.ID,
		PostID:      data.PostID,
		ParentID:    data.ParentID,
		AuthorName:  data.AuthorName,
		AuthorEmail: data.AuthorEmail,
		Content:     data.Content,
		Approved:    data.Approved,
		CreatedAt:   data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:          data.ID,
		PostID:      data.PostID,
		ParentID:    data.ParentID,
		AuthorName:  data.AuthorName,
		AuthorEmail: data.AuthorEmail,
		Content:     data.Content,
		Approved:    data.Approved,
	}
}
