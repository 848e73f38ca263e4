package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a testify mock of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListForPost(ctx context.Context, postID uuid.UUID, includeUnapproved bool) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, includeUnapproved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) ParentExists(ctx context.Context, parentID, postID uuid.UUID) (bool, error) {
	args := m.Called(ctx, parentID, postID)

	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *MockCommentRepository) Approve(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
