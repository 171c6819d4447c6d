package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
)

type learningStateRepository struct {
	db *sql.DB
}

// NewLearningStateRepository creates a new LearningStateRepository implementation
func NewLearningStateRepository(db *sql.DB) repository.LearningStateRepository {
	return &learningStateRepository{db: db}
}

const learningStateColumns = `word_id, ease_factor, interval_days, repetitions, due_at, last_review_at, total_reviews, correct_reviews, updated_at`

func scanLearningState(row interface{ Scan(...any) error }) (models.LearningState, error) {
	var s models.LearningState
	var dueAt, lastReviewAt sql.NullTime
	err := row.Scan(&s.WordID, &s.EaseFactor, &s.IntervalDays, &s.Repetitions, &dueAt, &lastReviewAt, &s.TotalReviews, &s.CorrectReviews, &s.UpdatedAt)
	if err != nil {
		return s, err
	}
	s.DueAt = timePtr(dueAt)
	s.LastReviewAt = timePtr(lastReviewAt)
	return s, nil
}

func (r *learningStateRepository) Get(ctx context.Context, wordID int64) (*models.LearningState, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_state_repo")
	log.Debug("getting learning state: word_id=%d", wordID)

	row := r.db.QueryRowContext(ctx, `
SELECT `+learningStateColumns+`
FROM learning_states
WHERE word_id = ?
`, wordID)
	s, err := scanLearningState(row)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no learning state for word_id=%d", wordID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get learning state: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *learningStateRepository) Save(ctx context.Context, s models.LearningState) error {
	log := logger.FromContext(ctx).WithPrefix("learning_state_repo")
	log.Debug("saving learning state: word_id=%d, interval=%d, ease=%.2f", s.WordID, s.IntervalDays, s.EaseFactor)

	var dueAt, lastReviewAt any
	if s.DueAt != nil {
		dueAt = *s.DueAt
	}
	if s.LastReviewAt != nil {
		lastReviewAt = *s.LastReviewAt
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO learning_states (word_id, ease_factor, interval_days, repetitions, due_at, last_review_at, total_reviews, correct_reviews, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(word_id) DO UPDATE SET
    ease_factor = excluded.ease_factor,
    interval_days = excluded.interval_days,
    repetitions = excluded.repetitions,
    due_at = excluded.due_at,
    last_review_at = excluded.last_review_at,
    total_reviews = excluded.total_reviews,
    correct_reviews = excluded.correct_reviews,
    updated_at = excluded.updated_at
`, s.WordID, s.EaseFactor, s.IntervalDays, s.Repetitions, dueAt, lastReviewAt, s.TotalReviews, s.CorrectReviews, s.UpdatedAt)
	if err != nil {
		log.Error("failed to save learning state: %v", err)
	}
	return err
}

func (r *learningStateRepository) All(ctx context.Context) ([]models.LearningState, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_state_repo")
	log.Debug("fetching all learning states")

	rows, err := r.db.QueryContext(ctx, `
SELECT `+learningStateColumns+`
FROM learning_states
`)
	if err != nil {
		log.Error("failed to query learning states: %v", err)
		return nil, err
	}
	defer rows.Close()

	var states []models.LearningState
	for rows.Next() {
		s, err := scanLearningState(rows)
		if err != nil {
			log.Error("failed to scan learning state row: %v", err)
			return nil, err
		}
		states = append(states, s)
	}
	log.Debug("found %d learning states", len(states))
	return states, rows.Err()
}

func (r *learningStateRepository) ForWords(ctx context.Context, wordIDs []int64) (map[int64]models.LearningState, error) {
	log := logger.FromContext(ctx).WithPrefix("learning_state_repo")
	log.Debug("fetching learning states for %d words", len(wordIDs))

	states := make(map[int64]models.LearningState, len(wordIDs))
	if len(wordIDs) == 0 {
		return states, nil
	}

	query, args, err := sqlBuilder.
		Select("word_id", "ease_factor", "interval_days", "repetitions", "due_at", "last_review_at", "total_reviews", "correct_reviews", "updated_at").
		From("learning_states").
		Where(squirrel.Eq{"word_id": wordIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query learning states: %v", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanLearningState(rows)
		if err != nil {
			log.Error("failed to scan learning state row: %v", err)
			return nil, err
		}
		states[s.WordID] = s
	}
	return states, rows.Err()
}
