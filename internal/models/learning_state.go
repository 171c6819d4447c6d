package models

import "time"

// Maturity is the derived learning bucket of a word. It is computed from
// interval and repetition counts, never stored.
type Maturity string

const (
	MaturityNew      Maturity = "new"
	MaturityLearning Maturity = "learning"
	MaturityYoung    Maturity = "young"
	MaturityMature   Maturity = "mature"
	MaturityRetired  Maturity = "retired"
)

// LearningState holds the scheduling state of a single vocabulary word.
// One record per word, keyed by WordID.
type LearningState struct {
	WordID         int64      `json:"word_id"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	Repetitions    int        `json:"repetitions"`
	DueAt          *time.Time `json:"due_at"`
	LastReviewAt   *time.Time `json:"last_review_at"`
	TotalReviews   int        `json:"total_reviews"`
	CorrectReviews int        `json:"correct_reviews"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Accuracy returns the lifetime correct-answer ratio, or 0 for unreviewed words.
func (s LearningState) Accuracy() float64 {
	if s.TotalReviews == 0 {
		return 0
	}
	return float64(s.CorrectReviews) / float64(s.TotalReviews)
}
