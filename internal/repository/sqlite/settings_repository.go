package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
)

type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository implementation
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("getting settings")

	var s models.Settings
	err := r.db.QueryRowContext(ctx, `
SELECT new_cards_per_day, reviews_per_day, learn_ahead, quiz_bidirectional
FROM settings
WHERE id = 1
`).Scan(&s.NewCardsPerDay, &s.ReviewsPerDay, &s.LearnAhead, &s.QuizBidirectional)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no settings row, using defaults")
		return models.DefaultSettings(), nil
	}
	if err != nil {
		log.Error("failed to get settings: %v", err)
		return models.Settings{}, err
	}
	return s, nil
}

// Seed writes the settings row only when none exists yet, so configured
// defaults never clobber values the user already changed.
func (r *settingsRepository) Seed(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("seeding settings: new=%d, reviews=%d", s.NewCardsPerDay, s.ReviewsPerDay)

	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO settings (id, new_cards_per_day, reviews_per_day, learn_ahead, quiz_bidirectional)
VALUES (1, ?, ?, ?, ?)
`, s.NewCardsPerDay, s.ReviewsPerDay, s.LearnAhead, s.QuizBidirectional)
	if err != nil {
		log.Error("failed to seed settings: %v", err)
	}
	return err
}

func (r *settingsRepository) Save(ctx context.Context, s models.Settings) error {
	log := logger.FromContext(ctx).WithPrefix("settings_repo")
	log.Debug("saving settings: new=%d, reviews=%d", s.NewCardsPerDay, s.ReviewsPerDay)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO settings (id, new_cards_per_day, reviews_per_day, learn_ahead, quiz_bidirectional)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    new_cards_per_day = excluded.new_cards_per_day,
    reviews_per_day = excluded.reviews_per_day,
    learn_ahead = excluded.learn_ahead,
    quiz_bidirectional = excluded.quiz_bidirectional
`, s.NewCardsPerDay, s.ReviewsPerDay, s.LearnAhead, s.QuizBidirectional)
	if err != nil {
		log.Error("failed to save settings: %v", err)
	}
	return err
}
