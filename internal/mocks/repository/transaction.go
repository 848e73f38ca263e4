// Package repository provides hand-written test doubles for the domain
// repository interfaces, built on testify's mock package.
package repository

import (
	"context"

	"blog/internal/domain/repository"
)

// Factory is a RepositoryFactory backed by mock repositories. Tests set
// expectations on the individual mocks and hand the factory to a
// TransactionManager stub.
type Factory struct {
	Users    *MockUserRepository
	Posts    *MockPostRepository
	Comments *MockCommentRepository
}

// NewFactory creates a factory with fresh mocks for all repositories.
func NewFactory() *Factory {
	return &Factory{
		Users:    &MockUserRepository{},
		Posts:    &MockPostRepository{},
		Comments: &MockCommentRepository{},
	}
}

// UserRepo returns the mock user repository.
func (f *Factory) UserRepo() repository.UserRepository {
	return f.Users
}

// PostRepo returns the mock post repository.
func (f *Factory) PostRepo() repository.PostRepository {
	return f.Posts
}

// CommentRepo returns the mock comment repository.
func (f *Factory) CommentRepo() repository.CommentRepository {
	return f.Comments
}

// StubTransactionManager runs the callback directly against the held
// factory with no real transaction semantics.
type StubTransactionManager struct {
	Factory *Factory

	// BeginErr, when set, is returned without invoking the callback.
	BeginErr error
}

// NewStubTransactionManager wires a stub manager around a fresh factory.
func NewStubTransactionManager() *StubTransactionManager {
	return &StubTransactionManager{Factory: NewFactory()}
}

// Execute implements repository.TransactionManager.
func (m *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
