package repository

import (
	"context"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// WordRepository handles vocabulary word and word-list data access
type WordRepository interface {
	Insert(ctx context.Context, word models.Word) (int64, error)
	Get(ctx context.Context, id int64) (*models.Word, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	Delete(ctx context.Context, id int64) error
	InsertList(ctx context.Context, list models.WordList) (int64, error)
	Lists(ctx context.Context) ([]models.WordList, error)
	AddToList(ctx context.Context, listID, wordID int64) error
	WordIDsForLists(ctx context.Context, listIDs []int64) ([]int64, error)
}

// LearningStateRepository handles per-word scheduling state. Get returns
// (nil, nil) for words that have never been reviewed.
type LearningStateRepository interface {
	Get(ctx context.Context, wordID int64) (*models.LearningState, error)
	Save(ctx context.Context, state models.LearningState) error
	All(ctx context.Context) ([]models.LearningState, error)
	ForWords(ctx context.Context, wordIDs []int64) (map[int64]models.LearningState, error)
}

// SessionRepository handles completed quiz session history. Only finished
// sessions are ever inserted; cancelled sessions are discarded upstream.
type SessionRepository interface {
	Insert(ctx context.Context, session models.QuizSession) error
	History(ctx context.Context, limit int) ([]models.QuizSession, error)
	AnswersSince(ctx context.Context, since time.Time) ([]models.SessionAnswer, error)
}

// SettingsRepository handles the single review-settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
	Seed(ctx context.Context, settings models.Settings) error
}
