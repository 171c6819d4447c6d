package srs

import "github.com/yusufdinc974/LinguaReader-sub001/internal/models"

// Maturity thresholds in days and repetitions.
const (
	// LearningMaxRepetitions: cards with at most this many consecutive
	// successes are still in the learning phase.
	LearningMaxRepetitions = 1
	// MatureThresholdDays separates young from mature cards.
	MatureThresholdDays = 21
	// RetiredThresholdDays marks cards scheduled a year or more out.
	RetiredThresholdDays = 365
)

// MaturityOf derives the maturity bucket of a learning state. It is a pure
// function of the interval and repetition counters.
func MaturityOf(state models.LearningState) models.Maturity {
	switch {
	case state.TotalReviews == 0:
		return models.MaturityNew
	case state.Repetitions <= LearningMaxRepetitions || state.IntervalDays < 1:
		return models.MaturityLearning
	case state.IntervalDays >= RetiredThresholdDays:
		return models.MaturityRetired
	case state.IntervalDays >= MatureThresholdDays:
		return models.MaturityMature
	default:
		return models.MaturityYoung
	}
}
