package srs

import (
	"sort"
	"time"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

// OverallStats builds the maturity histogram over a collection of states.
func OverallStats(states []models.LearningState) models.MaturityStats {
	stats := models.MaturityStats{TotalCards: len(states)}
	for _, s := range states {
		switch MaturityOf(s) {
		case models.MaturityNew:
			stats.NewCards++
		case models.MaturityLearning:
			stats.LearningCards++
		case models.MaturityYoung:
			stats.YoungCards++
		case models.MaturityMature:
			stats.MatureCards++
		case models.MaturityRetired:
			stats.RetiredCards++
		}
	}
	return stats
}

// ReviewForecast counts how many cards come due on each of the next `days`
// calendar days. Index 0 is today. Cards without a due date are excluded;
// cards due before today do not appear (they are overdue, not forecast).
func ReviewForecast(states []models.LearningState, days int, now time.Time) []models.ForecastDay {
	if days <= 0 {
		return []models.ForecastDay{}
	}

	today := dateOnly(now)
	forecast := make([]models.ForecastDay, days)
	for i := range forecast {
		forecast[i].Date = today.AddDate(0, 0, i)
	}

	for _, s := range states {
		if s.DueAt == nil {
			continue
		}
		idx := daysBetween(today, dateOnly(*s.DueAt))
		if idx >= 0 && idx < days {
			forecast[idx].DueCount++
		}
	}
	return forecast
}

// OverdueCards counts cards whose due date has passed, broken down by
// maturity bucket.
func OverdueCards(states []models.LearningState, now time.Time) models.OverdueStats {
	stats := models.OverdueStats{ByBucket: make(map[models.Maturity]int)}
	for _, s := range states {
		if s.DueAt == nil || !s.DueAt.Before(now) {
			continue
		}
		stats.Total++
		stats.ByBucket[MaturityOf(s)]++
	}
	return stats
}

// AccuracyStats buckets answers by calendar day over the trailing `days`
// window ending today and computes per-day and aggregate accuracy. Days with
// no answers carry a nil accuracy so the UI can distinguish "no data" from 0%.
func AccuracyStats(answers []models.SessionAnswer, days int, now time.Time) models.AccuracyStats {
	if days <= 0 {
		return models.AccuracyStats{Days: []models.DailyAccuracy{}}
	}

	today := dateOnly(now)
	daily := make([]models.DailyAccuracy, days)
	for i := range daily {
		daily[i].Date = today.AddDate(0, 0, i-days+1)
	}

	totalCorrect := 0
	totalAnswers := 0
	for _, a := range answers {
		offset := daysBetween(dateOnly(a.AnsweredAt), today)
		if offset < 0 || offset >= days {
			continue
		}
		d := &daily[days-1-offset]
		d.TotalAnswers++
		if a.Correct {
			d.CorrectAnswers++
		}
		totalAnswers++
		if a.Correct {
			totalCorrect++
		}
	}

	for i := range daily {
		if daily[i].TotalAnswers > 0 {
			acc := float64(daily[i].CorrectAnswers) / float64(daily[i].TotalAnswers)
			daily[i].Accuracy = &acc
		}
	}

	avg := 0.0
	if totalAnswers > 0 {
		avg = float64(totalCorrect) / float64(totalAnswers)
	}
	return models.AccuracyStats{
		AverageAccuracy: avg,
		TotalAnswers:    totalAnswers,
		Days:            daily,
	}
}

// StreakInfo computes study streaks from completed sessions. A streak is a
// run of consecutive calendar days each containing at least one session; the
// current streak must end today or yesterday, otherwise it is 0.
func StreakInfo(history []models.QuizSession, now time.Time) models.StreakInfo {
	seen := make(map[time.Time]bool)
	for _, s := range history {
		at := s.StartedAt
		if s.EndedAt != nil {
			at = *s.EndedAt
		}
		seen[dateOnly(at)] = true
	}
	if len(seen) == 0 {
		return models.StreakInfo{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 0
	day := dateOnly(now)
	if !seen[day] {
		// A streak survives until a full day is missed.
		day = day.AddDate(0, 0, -1)
	}
	for seen[day] {
		current++
		day = day.AddDate(0, 0, -1)
	}

	return models.StreakInfo{CurrentStreak: current, LongestStreak: longest}
}

// dateOnly truncates a timestamp to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole calendar days from a to b. Both arguments
// must already be midnight-truncated.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
