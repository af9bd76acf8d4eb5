package testutil

import (
	"watbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWatRepository is a mock for WatRepository
type MockWatRepository struct {
	mock.Mock
}

func (m *MockWatRepository) Create(name string, fileIDs []string) (*domain.Wat, error) {
	args := m.Called(name, fileIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wat), args.Error(1)
}

func (m *MockWatRepository) Exists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatRepository) GetByName(name string) (*domain.Wat, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wat), args.Error(1)
}

func (m *MockWatRepository) GetByID(id int64) (*domain.Wat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wat), args.Error(1)
}

func (m *MockWatRepository) ListAll() ([]domain.Wat, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wat), args.Error(1)
}

func (m *MockWatRepository) SearchByExpression(expression string) ([]domain.Wat, error) {
	args := m.Called(expression)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wat), args.Error(1)
}

func (m *MockWatRepository) SetExpressions(name string, expressions []string) error {
	args := m.Called(name, expressions)
	return args.Error(0)
}

func (m *MockWatRepository) Remove(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

// MockWhitelistStore is a mock for service.WhitelistStore
type MockWhitelistStore struct {
	mock.Mock
}

func (m *MockWhitelistStore) Owner() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockWhitelistStore) UseWhitelist() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockWhitelistStore) Whitelist() map[string]int64 {
	args := m.Called()
	return args.Get(0).(map[string]int64)
}

func (m *MockWhitelistStore) AddWhitelistEntry(name string, userID int64) (bool, error) {
	args := m.Called(name, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWhitelistStore) RemoveWhitelistEntry(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}
