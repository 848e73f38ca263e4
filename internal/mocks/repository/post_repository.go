package repository

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a testify mock of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, filter repository.PostFilter) ([]*entity.Post, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)

	return args.Error(0)
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)

	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) CategoryCounts(ctx context.Context, includeUnpublished bool) ([]entity.CategoryCount, error) {
	args := m.Called(ctx, includeUnpublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CategoryCount), args.Error(1)
}
