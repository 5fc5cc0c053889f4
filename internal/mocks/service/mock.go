// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"time"

	"sms/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type cleanupT interface {
	mock.TestingT
	Cleanup(func())
}

type MockPasswordHasher struct{ mock.Mock }

func NewMockPasswordHasher(t cleanupT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

type MockTokenService struct{ mock.Mock }

func NewMockTokenService(t cleanupT) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func claimsAt(args mock.Arguments, i int) *entity.Claims {
	claims, _ := args.Get(i).(*entity.Claims)
	return claims
}

func (m *MockTokenService) Issue(claims entity.Claims, secret string, ttl time.Duration) (string, error) {
	args := m.Called(claims, secret, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token, secret string) (*entity.Claims, error) {
	args := m.Called(token, secret)
	return claimsAt(args, 0), args.Error(1)
}

func (m *MockTokenService) GenerateTokenPair(claims entity.Claims) (string, string, error) {
	args := m.Called(claims)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) IssueAccessToken(claims entity.Claims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyAccessToken(token string) (*entity.Claims, error) {
	args := m.Called(token)
	return claimsAt(args, 0), args.Error(1)
}

func (m *MockTokenService) VerifyRefreshToken(token string) (*entity.Claims, error) {
	args := m.Called(token)
	return claimsAt(args, 0), args.Error(1)
}
