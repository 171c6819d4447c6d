package api

import (
	"net/http"
)

func (s *Server) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Stats.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStatsForecast(w http.ResponseWriter, r *http.Request) {
	days := queryIntOr(r, "days", s.ForecastDays)

	forecast, err := s.Stats.Forecast(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"forecast": forecast})
}

func (s *Server) handleStatsOverdue(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Stats.Overdue(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStatsAccuracy(w http.ResponseWriter, r *http.Request) {
	days := queryIntOr(r, "days", 0)

	stats, err := s.Stats.Accuracy(r.Context(), days)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleStatsStreak(w http.ResponseWriter, r *http.Request) {
	info, err := s.Stats.Streak(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}
