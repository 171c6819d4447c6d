package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/services"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/testutil/mocks"
)

func newStatsService(states *mocks.MockLearningStateRepository, sessions *mocks.MockSessionRepository) services.StatsService {
	return services.NewStatsService(states, sessions, services.WithStatsClock(fixedClock))
}

func TestStatsService_Overview(t *testing.T) {
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	states.On("All", mock.Anything).Return([]models.LearningState{
		{},
		{TotalReviews: 4, Repetitions: 3, IntervalDays: 30},
	}, nil)

	stats, err := newStatsService(states, sessions).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCards)
	assert.Equal(t, 1, stats.NewCards)
	assert.Equal(t, 1, stats.MatureCards)
}

func TestStatsService_Forecast(t *testing.T) {
	due := serviceNow.AddDate(0, 0, 1)
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	states.On("All", mock.Anything).Return([]models.LearningState{
		{TotalReviews: 1, DueAt: &due},
	}, nil)

	forecast, err := newStatsService(states, sessions).Forecast(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, forecast, 7)
	assert.Equal(t, 1, forecast[1].DueCount)
}

func TestStatsService_Forecast_ClampsWindow(t *testing.T) {
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	states.On("All", mock.Anything).Return([]models.LearningState{}, nil)

	svc := newStatsService(states, sessions)

	forecast, err := svc.Forecast(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, forecast, services.DefaultStatsDays)

	forecast, err = svc.Forecast(context.Background(), 100000)
	require.NoError(t, err)
	assert.Len(t, forecast, services.MaxStatsDays)
}

func TestStatsService_Accuracy(t *testing.T) {
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	sessions.On("AnswersSince", mock.Anything, mock.Anything).Return([]models.SessionAnswer{
		{Correct: true, AnsweredAt: serviceNow},
		{Correct: false, AnsweredAt: serviceNow},
	}, nil)

	stats, err := newStatsService(states, sessions).Accuracy(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalAnswers)
	assert.InDelta(t, 0.5, stats.AverageAccuracy, 0.0001)
	assert.Len(t, stats.Days, 7)
}

func TestStatsService_Streak(t *testing.T) {
	end := serviceNow.Add(-time.Hour)
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	sessions.On("History", mock.Anything, 0).Return([]models.QuizSession{
		{Status: models.SessionFinished, StartedAt: end.Add(-10 * time.Minute), EndedAt: &end},
	}, nil)

	info, err := newStatsService(states, sessions).Streak(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, info.CurrentStreak)
	assert.Equal(t, 1, info.LongestStreak)
}

func TestStatsService_History(t *testing.T) {
	states := new(mocks.MockLearningStateRepository)
	sessions := new(mocks.MockSessionRepository)
	sessions.On("History", mock.Anything, 25).Return([]models.QuizSession{{ID: "s1"}}, nil)

	history, err := newStatsService(states, sessions).History(context.Background(), 25)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, "s1", history[0].ID)
}
