package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// MockLearningStateRepository is a mock implementation of repository.LearningStateRepository
type MockLearningStateRepository struct {
	mock.Mock
}

func (m *MockLearningStateRepository) Get(ctx context.Context, wordID int64) (*models.LearningState, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LearningState), args.Error(1)
}

func (m *MockLearningStateRepository) Save(ctx context.Context, state models.LearningState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockLearningStateRepository) All(ctx context.Context) ([]models.LearningState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LearningState), args.Error(1)
}

func (m *MockLearningStateRepository) ForWords(ctx context.Context, wordIDs []int64) (map[int64]models.LearningState, error) {
	args := m.Called(ctx, wordIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.LearningState), args.Error(1)
}
