package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// MockWordRepository is a mock implementation of repository.WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Insert(ctx context.Context, word models.Word) (int64, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) Get(ctx context.Context, id int64) (*models.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Word), args.Error(1)
}

func (m *MockWordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Word), args.Error(1)
}

func (m *MockWordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) InsertList(ctx context.Context, list models.WordList) (int64, error) {
	args := m.Called(ctx, list)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) Lists(ctx context.Context) ([]models.WordList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WordList), args.Error(1)
}

func (m *MockWordRepository) AddToList(ctx context.Context, listID, wordID int64) error {
	args := m.Called(ctx, listID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) WordIDsForLists(ctx context.Context, listIDs []int64) ([]int64, error) {
	args := m.Called(ctx, listIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
