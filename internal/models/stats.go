package models

import "time"

// MaturityStats is the histogram of learning states by maturity bucket.
type MaturityStats struct {
	TotalCards    int `json:"total_cards"`
	NewCards      int `json:"new_cards"`
	LearningCards int `json:"learning_cards"`
	YoungCards    int `json:"young_cards"`
	MatureCards   int `json:"mature_cards"`
	RetiredCards  int `json:"retired_cards"`
}

// ForecastDay is one day of the upcoming review calendar. Index 0 is today.
type ForecastDay struct {
	Date     time.Time `json:"date"`
	DueCount int       `json:"due_count"`
}

// OverdueStats counts cards whose due date has already passed.
type OverdueStats struct {
	Total    int              `json:"total"`
	ByBucket map[Maturity]int `json:"by_bucket"`
}

// DailyAccuracy is the answer accuracy for a single calendar day.
// Accuracy is nil for days with no answers to distinguish "no data" from 0%.
type DailyAccuracy struct {
	Date           time.Time `json:"date"`
	TotalAnswers   int       `json:"total_answers"`
	CorrectAnswers int       `json:"correct_answers"`
	Accuracy       *float64  `json:"accuracy"`
}

// AccuracyStats aggregates answer accuracy over a trailing time window.
type AccuracyStats struct {
	AverageAccuracy float64         `json:"average_accuracy"`
	TotalAnswers    int             `json:"total_answers"`
	Days            []DailyAccuracy `json:"days"`
}

// StreakInfo reports consecutive-day study streaks from session history.
type StreakInfo struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}
