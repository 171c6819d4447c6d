package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, s models.QuizSession) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: id=%s, answers=%d", s.ID, len(s.Answers))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO quiz_sessions (id, mode, style, started_at, ended_at)
VALUES (?, ?, ?, ?, ?)
`, s.ID, s.Mode, s.Style, s.StartedAt, s.EndedAt); err != nil {
			log.Error("failed to insert session: %v", err)
			return err
		}

		for _, listID := range s.ListIDs {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO quiz_session_lists (session_id, list_id)
VALUES (?, ?)
`, s.ID, listID); err != nil {
				log.Error("failed to insert session list: %v", err)
				return err
			}
		}

		for _, a := range s.Answers {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO quiz_answers (session_id, word_id, rating, correct, answered_at)
VALUES (?, ?, ?, ?, ?)
`, s.ID, a.WordID, int(a.Rating), a.Correct, a.AnsweredAt); err != nil {
				log.Error("failed to insert session answer: %v", err)
				return err
			}
		}
		return nil
	})
}

func (r *sessionRepository) History(ctx context.Context, limit int) ([]models.QuizSession, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("fetching session history: limit=%d", limit)

	query := `
SELECT id, mode, style, started_at, ended_at
FROM quiz_sessions
ORDER BY started_at DESC
`
	args := []any{}
	if limit > 0 {
		query += "LIMIT ?\n"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query sessions: %v", err)
		return nil, err
	}
	defer rows.Close()

	var sessions []models.QuizSession
	for rows.Next() {
		var s models.QuizSession
		var endedAt time.Time
		if err := rows.Scan(&s.ID, &s.Mode, &s.Style, &s.StartedAt, &endedAt); err != nil {
			log.Error("failed to scan session row: %v", err)
			return nil, err
		}
		s.EndedAt = &endedAt
		s.Status = models.SessionFinished
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		if err := r.loadSessionDetails(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	log.Debug("found %d sessions", len(sessions))
	return sessions, nil
}

func (r *sessionRepository) loadSessionDetails(ctx context.Context, s *models.QuizSession) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")

	listRows, err := r.db.QueryContext(ctx, `
SELECT list_id FROM quiz_session_lists WHERE session_id = ? ORDER BY list_id
`, s.ID)
	if err != nil {
		log.Error("failed to query session lists: %v", err)
		return err
	}
	defer listRows.Close()
	for listRows.Next() {
		var id int64
		if err := listRows.Scan(&id); err != nil {
			return err
		}
		s.ListIDs = append(s.ListIDs, id)
	}
	if err := listRows.Err(); err != nil {
		return err
	}

	answerRows, err := r.db.QueryContext(ctx, `
SELECT word_id, rating, correct, answered_at
FROM quiz_answers
WHERE session_id = ?
ORDER BY answered_at, id
`, s.ID)
	if err != nil {
		log.Error("failed to query session answers: %v", err)
		return err
	}
	defer answerRows.Close()
	for answerRows.Next() {
		var a models.SessionAnswer
		var rating int
		if err := answerRows.Scan(&a.WordID, &rating, &a.Correct, &a.AnsweredAt); err != nil {
			return err
		}
		a.Rating = models.Rating(rating)
		s.Answers = append(s.Answers, a)
		s.WordIDs = append(s.WordIDs, a.WordID)
	}
	return answerRows.Err()
}

func (r *sessionRepository) AnswersSince(ctx context.Context, since time.Time) ([]models.SessionAnswer, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("fetching answers since %s", since.Format(time.RFC3339))

	rows, err := r.db.QueryContext(ctx, `
SELECT word_id, rating, correct, answered_at
FROM quiz_answers
WHERE answered_at >= ?
ORDER BY answered_at, id
`, since)
	if err != nil {
		log.Error("failed to query answers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var answers []models.SessionAnswer
	for rows.Next() {
		var a models.SessionAnswer
		var rating int
		if err := rows.Scan(&a.WordID, &rating, &a.Correct, &a.AnsweredAt); err != nil {
			log.Error("failed to scan answer row: %v", err)
			return nil, err
		}
		a.Rating = models.Rating(rating)
		answers = append(answers, a)
	}
	log.Debug("found %d answers", len(answers))
	return answers, rows.Err()
}
