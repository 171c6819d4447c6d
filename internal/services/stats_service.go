package services

import (
	"context"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/srs"
)

const (
	// DefaultStatsDays is the window used when a caller does not ask for a
	// specific range.
	DefaultStatsDays = 30
	// MaxStatsDays bounds forecast and accuracy windows.
	MaxStatsDays = 365
)

// StatsService aggregates learning statistics over the stored states and
// session history.
type StatsService interface {
	Overview(ctx context.Context) (*models.MaturityStats, error)
	Forecast(ctx context.Context, days int) ([]models.ForecastDay, error)
	Overdue(ctx context.Context) (*models.OverdueStats, error)
	Accuracy(ctx context.Context, days int) (*models.AccuracyStats, error)
	Streak(ctx context.Context) (*models.StreakInfo, error)
	History(ctx context.Context, limit int) ([]models.QuizSession, error)
}

type statsService struct {
	states   repository.LearningStateRepository
	sessions repository.SessionRepository
	now      func() time.Time
}

// StatsOption configures a StatsService.
type StatsOption func(*statsService)

// WithStatsClock injects the time source.
func WithStatsClock(now func() time.Time) StatsOption {
	return func(s *statsService) {
		s.now = now
	}
}

// NewStatsService creates a new StatsService
func NewStatsService(states repository.LearningStateRepository, sessions repository.SessionRepository, opts ...StatsOption) StatsService {
	s := &statsService{
		states:   states,
		sessions: sessions,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *statsService) Overview(ctx context.Context) (*models.MaturityStats, error) {
	states, err := s.allStates(ctx)
	if err != nil {
		return nil, err
	}
	stats := srs.OverallStats(states)
	return &stats, nil
}

func (s *statsService) Forecast(ctx context.Context, days int) ([]models.ForecastDay, error) {
	days = clampDays(days)
	states, err := s.allStates(ctx)
	if err != nil {
		return nil, err
	}
	return srs.ReviewForecast(states, days, s.now()), nil
}

func (s *statsService) Overdue(ctx context.Context) (*models.OverdueStats, error) {
	states, err := s.allStates(ctx)
	if err != nil {
		return nil, err
	}
	stats := srs.OverdueCards(states, s.now())
	return &stats, nil
}

func (s *statsService) Accuracy(ctx context.Context, days int) (*models.AccuracyStats, error) {
	days = clampDays(days)
	now := s.now()
	since := now.AddDate(0, 0, -(days - 1))
	answers, err := s.sessions.AnswersSince(ctx, since)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load answers: %v", err)
		return nil, errors.NewInternalError(err)
	}
	stats := srs.AccuracyStats(answers, days, now)
	return &stats, nil
}

func (s *statsService) Streak(ctx context.Context) (*models.StreakInfo, error) {
	history, err := s.sessions.History(ctx, 0)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load session history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	info := srs.StreakInfo(history, s.now())
	return &info, nil
}

func (s *statsService) History(ctx context.Context, limit int) ([]models.QuizSession, error) {
	history, err := s.sessions.History(ctx, limit)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load session history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return history, nil
}

func (s *statsService) allStates(ctx context.Context) ([]models.LearningState, error) {
	states, err := s.states.All(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load learning states: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return states, nil
}

func clampDays(days int) int {
	if days <= 0 {
		return DefaultStatsDays
	}
	if days > MaxStatsDays {
		return MaxStatsDays
	}
	return days
}
