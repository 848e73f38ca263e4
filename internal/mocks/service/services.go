// Package service provides hand-written test doubles for the domain
// service interfaces.
package service

import (
	"time"

	"blog/internal/domain/entity"
	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(userID uuid.UUID, username string, role entity.Role) (string, error) {
	args := m.Called(userID, username, role)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) Refresh(claims *service.Claims) (string, error) {
	args := m.Called(claims)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// PassthroughSanitizer implements service.ContentSanitizer without
// modifying the input, keeping content assertions simple.
type PassthroughSanitizer struct{}

func (PassthroughSanitizer) Sanitize(html string) string {
	return html
}

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

func (m *MockQRCodeService) GenerateShareQR(url string) ([]byte, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
