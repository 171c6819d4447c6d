package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Insert(ctx context.Context, session models.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) History(ctx context.Context, limit int) ([]models.QuizSession, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizSession), args.Error(1)
}

func (m *MockSessionRepository) AnswersSince(ctx context.Context, since time.Time) ([]models.SessionAnswer, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionAnswer), args.Error(1)
}
