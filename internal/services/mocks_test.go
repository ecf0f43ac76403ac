package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
)

// MockProfileStore is a mock implementation of services.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Append(ctx context.Context, profile *models.SeniorProfile) (*models.SeniorProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeniorProfile), args.Error(1)
}

func (m *MockProfileStore) GetAll(ctx context.Context) ([]*models.SeniorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SeniorProfile), args.Error(1)
}

func (m *MockProfileStore) GetByID(ctx context.Context, id string) (*models.SeniorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeniorProfile), args.Error(1)
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID string) (*models.SeniorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SeniorProfile), args.Error(1)
}

func (m *MockProfileStore) Update(ctx context.Context, profile *models.SeniorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockFavoriteStore is a mock implementation of services.FavoriteStore
type MockFavoriteStore struct {
	mock.Mock
}

func (m *MockFavoriteStore) ListByUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFavoriteStore) Add(ctx context.Context, userID, mentorID string) error {
	args := m.Called(ctx, userID, mentorID)
	return args.Error(0)
}

func (m *MockFavoriteStore) Remove(ctx context.Context, userID, mentorID string) error {
	args := m.Called(ctx, userID, mentorID)
	return args.Error(0)
}

// MockOnboardingStore is a mock implementation of services.OnboardingStore
type MockOnboardingStore struct {
	mock.Mock
}

func (m *MockOnboardingStore) HasSeen(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOnboardingStore) MarkSeen(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockDirectorySource is a mock implementation of services.DirectorySource
type MockDirectorySource struct {
	mock.Mock
}

func (m *MockDirectorySource) GetAll(ctx context.Context) ([]*models.SeniorProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SeniorProfile), args.Error(1)
}

// MockDirectoryInvalidator is a mock implementation of services.DirectoryInvalidator
type MockDirectoryInvalidator struct {
	mock.Mock
}

func (m *MockDirectoryInvalidator) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
