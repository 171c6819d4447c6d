// Package quiz implements the quiz session state machine. Sessions move
// Active -> Finished or Active -> Cancelled and never back; all transitions
// are pure functions over the session value, so persistence stays with the
// caller.
package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/srs"
)

var (
	// ErrNoCards signals that a session was requested with nothing to review.
	ErrNoCards = errors.New("quiz: no cards to review")
	// ErrNotActive signals an operation on a finished or cancelled session.
	ErrNotActive = errors.New("quiz: session is not active")
	// ErrWordNotInSession signals an answer for a card the session never selected.
	ErrWordNotInSession = errors.New("quiz: word is not part of this session")
)

// Start constructs a new active session over the given card order.
func Start(wordIDs []int64, listIDs []int64, mode, style string, now time.Time) (models.QuizSession, error) {
	if len(wordIDs) == 0 {
		return models.QuizSession{}, ErrNoCards
	}
	if mode == "" {
		mode = models.ModeWordToTranslation
	}
	if style == "" {
		style = models.StyleFlashcard
	}
	return models.QuizSession{
		ID:        uuid.NewString(),
		ListIDs:   listIDs,
		Mode:      mode,
		Style:     style,
		Status:    models.SessionActive,
		WordIDs:   wordIDs,
		StartedAt: now,
	}, nil
}

// RecordAnswer appends an answer to the session and runs the scheduler over
// the card's learning state. Neither input is mutated; the caller persists
// the returned state. A failed save means retrying the save, not redoing the
// scheduling computation.
func RecordAnswer(session models.QuizSession, state models.LearningState, rating models.Rating, now time.Time) (models.QuizSession, models.LearningState, error) {
	if session.Status != models.SessionActive {
		return session, state, ErrNotActive
	}
	if !containsWord(session.WordIDs, state.WordID) {
		return session, state, ErrWordNotInSession
	}

	rating = rating.Clamp()
	next := srs.NextState(state, rating, now)

	answers := make([]models.SessionAnswer, len(session.Answers), len(session.Answers)+1)
	copy(answers, session.Answers)
	session.Answers = append(answers, models.SessionAnswer{
		WordID:     state.WordID,
		Rating:     rating,
		Correct:    rating.IsCorrect(),
		AnsweredAt: now,
	})
	return session, next, nil
}

// Finish stamps the end time and freezes the session. A session with zero
// answers is still a valid, if degenerate, completed record.
func Finish(session models.QuizSession, now time.Time) (models.QuizSession, error) {
	if session.Status != models.SessionActive {
		return session, ErrNotActive
	}
	session.Status = models.SessionFinished
	session.EndedAt = &now
	return session, nil
}

// Cancel moves the session to its discarded terminal state. Learning-state
// updates already applied for answered cards are not rolled back; cancelling
// only keeps the session out of history.
func Cancel(session models.QuizSession) (models.QuizSession, error) {
	if session.Status != models.SessionActive {
		return session, ErrNotActive
	}
	session.Status = models.SessionCancelled
	return session, nil
}

func containsWord(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
