// Package srs implements the spaced-repetition scheduler used by the
// vocabulary quiz. It is a pure package: every function takes the current
// learning state and the clock as input and returns a new value, so the
// scheduler itself holds no state and performs no I/O.
package srs

import (
	"math"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// Scheduling constants. The algorithm is an SM-2 variant with a fixed
// two-step graduation table and per-rating interval multipliers.
const (
	// DefaultEaseFactor is the starting ease of a brand-new card.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor below which ease never drops, no matter
	// how many consecutive lapses occur.
	MinEaseFactor = 1.3
	// RelearnIntervalDays is the interval a card falls back to on a lapse.
	RelearnIntervalDays = 1
	// FirstIntervalDays and SecondIntervalDays form the graduation table
	// for the first two successful repetitions.
	FirstIntervalDays  = 1
	SecondIntervalDays = 6
	// MaxIntervalDays caps interval growth at ten years.
	MaxIntervalDays = 3650
)

// Ease adjustments and interval multipliers per rating.
const (
	lapseEasePenalty = 0.20
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15

	hardIntervalMultiplier = 0.8
	easyIntervalMultiplier = 1.3
)

// NewState returns the learning state of a never-reviewed word.
func NewState(wordID int64) models.LearningState {
	return models.LearningState{
		WordID:     wordID,
		EaseFactor: DefaultEaseFactor,
	}
}

// NextState computes the learning state that follows a review. The input is
// never mutated and the current time is injected so the function stays pure.
//
// Due dates are always scheduled from now, not from the theoretical previous
// due date. A card reviewed early or late therefore restarts its interval at
// the moment of review. This matches the reader's original behavior and is a
// deliberate simplification of canonical SM-2.
func NextState(state models.LearningState, rating models.Rating, now time.Time) models.LearningState {
	rating = rating.Clamp()
	next := clampState(state)

	next.TotalReviews++
	if rating.IsCorrect() {
		next.CorrectReviews++
	}

	if rating == models.RatingAgain {
		// Lapse: back to relearning, ease takes a hit.
		next.Repetitions = 0
		next.IntervalDays = RelearnIntervalDays
		next.EaseFactor = clampEase(next.EaseFactor - lapseEasePenalty)
	} else {
		next.Repetitions++
		next.IntervalDays = nextInterval(next.Repetitions, next.IntervalDays, next.EaseFactor, rating)

		switch rating {
		case models.RatingHard:
			next.EaseFactor = clampEase(next.EaseFactor - hardEasePenalty)
		case models.RatingEasy:
			next.EaseFactor = clampEase(next.EaseFactor + easyEaseBonus)
		}
	}

	due := now.AddDate(0, 0, next.IntervalDays)
	reviewedAt := now
	next.DueAt = &due
	next.LastReviewAt = &reviewedAt
	next.UpdatedAt = now
	return next
}

// nextInterval applies the graduation table for the first two repetitions and
// the multiplicative growth formula afterwards.
func nextInterval(repetitions, intervalDays int, ease float64, rating models.Rating) int {
	switch repetitions {
	case 1:
		return FirstIntervalDays
	case 2:
		return SecondIntervalDays
	}

	multiplier := 1.0
	switch rating {
	case models.RatingHard:
		multiplier = hardIntervalMultiplier
	case models.RatingEasy:
		multiplier = easyIntervalMultiplier
	}

	next := int(math.Round(float64(intervalDays) * ease * multiplier))
	if next <= intervalDays {
		// Intervals must keep growing on success, even for Hard answers
		// on short intervals.
		next = intervalDays + 1
	}
	if next > MaxIntervalDays {
		next = MaxIntervalDays
	}
	return next
}

// clampState repairs out-of-range input instead of rejecting it. The
// scheduler is a best-effort learning heuristic, not a correctness-critical
// system, so malformed state is pulled back into range.
func clampState(state models.LearningState) models.LearningState {
	if state.EaseFactor == 0 {
		state.EaseFactor = DefaultEaseFactor
	}
	state.EaseFactor = clampEase(state.EaseFactor)
	if state.IntervalDays < 0 {
		state.IntervalDays = 0
	}
	if state.Repetitions < 0 {
		state.Repetitions = 0
	}
	return state
}

func clampEase(ease float64) float64 {
	if ease < MinEaseFactor {
		return MinEaseFactor
	}
	return ease
}
