package services

import (
	"context"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
)

// SettingsService manages the review settings record.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, settings models.Settings) (models.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings models.Settings) (models.Settings, error) {
	if settings.NewCardsPerDay < 0 {
		return models.Settings{}, errors.NewValidationError("new_cards_per_day", "must not be negative")
	}
	if settings.ReviewsPerDay < 0 {
		return models.Settings{}, errors.NewValidationError("reviews_per_day", "must not be negative")
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		logger.FromContext(ctx).Error("failed to save settings: %v", err)
		return models.Settings{}, errors.NewInternalError(err)
	}
	return settings, nil
}
