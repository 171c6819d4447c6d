package models

import "time"

// SessionStatus tracks the quiz session state machine. A session starts
// active and ends in exactly one terminal state; there is no way back.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionFinished  SessionStatus = "finished"
	SessionCancelled SessionStatus = "cancelled"
)

// Quiz modes: which side of the card is shown as the prompt.
const (
	ModeWordToTranslation = "word_to_translation"
	ModeTranslationToWord = "translation_to_word"
)

// Quiz styles supported by the reader UI.
const (
	StyleFlashcard      = "flashcard"
	StyleMultipleChoice = "multiple_choice"
	StyleTyping         = "typing"
)

// SessionAnswer is one answered card within a quiz session.
type SessionAnswer struct {
	WordID     int64     `json:"word_id"`
	Rating     Rating    `json:"rating"`
	Correct    bool      `json:"correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

// QuizSession is a single quiz run over a set of word lists. It accumulates
// answers while active and is frozen once finished. Cancelled sessions are
// discarded and never reach session history.
type QuizSession struct {
	ID        string          `json:"id"`
	ListIDs   []int64         `json:"list_ids"`
	Mode      string          `json:"mode"`
	Style     string          `json:"style"`
	Status    SessionStatus   `json:"status"`
	WordIDs   []int64         `json:"word_ids"`
	StartedAt time.Time       `json:"started_at"`
	EndedAt   *time.Time      `json:"ended_at"`
	Answers   []SessionAnswer `json:"answers"`
}

// Duration returns the session length, or 0 while the session is still active.
func (s QuizSession) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// CorrectCount returns how many answers were rated Good or Easy.
func (s QuizSession) CorrectCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}
