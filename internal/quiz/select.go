package quiz

import (
	"math/rand"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// SelectDueCards picks the word IDs for a quiz session from the candidate
// set: cards due for review capped by ReviewsPerDay, plus never-reviewed
// cards capped by NewCardsPerDay, shuffled together.
//
// With LearnAhead enabled, cards due later today are included as well.
//
// The random source is injected so tests can pass a seeded generator; callers
// may pass nil to get a time-seeded one. The shuffle runs on every call, so
// repeating a quiz presents the same cards in a fresh order.
func SelectDueCards(candidates []int64, states map[int64]models.LearningState, settings models.Settings, now time.Time, rng *rand.Rand) []int64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cutoff := now
	if settings.LearnAhead {
		y, m, d := now.Date()
		cutoff = time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	}

	var due, fresh []int64
	for _, id := range candidates {
		s, ok := states[id]
		if !ok || s.TotalReviews == 0 {
			fresh = append(fresh, id)
			continue
		}
		if s.DueAt == nil || s.DueAt.Before(cutoff) || s.DueAt.Equal(now) {
			due = append(due, id)
		}
	}

	due = capCards(due, settings.ReviewsPerDay)
	fresh = capCards(fresh, settings.NewCardsPerDay)

	selected := make([]int64, 0, len(due)+len(fresh))
	selected = append(selected, due...)
	selected = append(selected, fresh...)

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

func capCards(ids []int64, limit int) []int64 {
	if limit < 0 {
		limit = 0
	}
	if len(ids) > limit {
		return ids[:limit]
	}
	return ids
}
