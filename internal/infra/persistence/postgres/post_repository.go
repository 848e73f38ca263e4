package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindBySlug retrieves a single post by its slug. Published state is not
// filtered here; the usecase layer decides visibility per verdict.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toPostDomain(&postM), nil
}

// List returns one page of posts, newest first, plus the total count
// matching the filter.
func (repo *postRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PostModel{})

	if !filter.IncludeUnpublished {
		query = query.Where("published = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// Tags are stored comma-separated; match whole entries only.
		query = query.Where(
			"',' || tags || ',' LIKE ?",
			"%,"+filter.Tag+",%",
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	var postMs []*model.PostModel
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&postMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, total, nil
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSlugConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update persists changes to an existing post.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]any{
			"title":          postM.Title,
			"slug":           postM.Slug,
			"excerpt":        postM.Excerpt,
			"content":        postM.Content,
			"author":         postM.Author,
			"category":       postM.Category,
			"tags":           postM.Tags,
			"featured_image": postM.FeaturedImage,
			"published":      postM.Published,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrSlugConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post; the comments cascade is enforced by the schema.
func (repo *postRepository) Delete(ctx context.Context, slug string) error {
	result := repo.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// SlugExists reports whether a post with the slug already exists.
func (repo *postRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return count > 0, nil
}

// CategoryCounts returns category names with post counts, ordered by count
// descending. Empty categories are skipped.
func (repo *postRepository) CategoryCounts(ctx context.Context, includeUnpublished bool) ([]entity.CategoryCount, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select("category", "COUNT(*) AS count").
		Where("category <> ''").
		Group("category").
		Order("count DESC")

	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var counts []entity.CategoryCount
	if err := query.Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count categories")
	}

	return counts, nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Excerpt:       data.Excerpt,
		Content:       data.Content,
		Author:        data.Author,
		Category:      data.Category,
		Tags:          data.Tags,
		FeaturedImage: data.FeaturedImage,
		Published:     data.Published,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:            data.ID,
		Title:         data.Title,
		Slug:          data.Slug,
		Excerpt:       data.Excerpt,
		Content:       data.Content,
		Author:        data.Author,
		Category:      data.Category,
		Tags:          data.Tags,
		FeaturedImage: data.FeaturedImage,
		Published:     data.Published,
	}
}
