package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleStartSession)
		r.Get("/sessions/active", s.handleActiveSession)
		r.Get("/sessions/history", s.handleSessionHistory)
		r.Post("/sessions/{id}/answers", s.handleRecordAnswer)
		r.Post("/sessions/{id}/finish", s.handleFinishSession)
		r.Post("/sessions/{id}/cancel", s.handleCancelSession)

		r.Get("/stats/overview", s.handleStatsOverview)
		r.Get("/stats/forecast", s.handleStatsForecast)
		r.Get("/stats/overdue", s.handleStatsOverdue)
		r.Get("/stats/accuracy", s.handleStatsAccuracy)
		r.Get("/stats/streak", s.handleStatsStreak)

		r.Get("/words", s.handleListWords)
		r.Post("/words", s.handleCreateWord)
		r.Get("/words/{id}", s.handleGetWord)
		r.Delete("/words/{id}", s.handleDeleteWord)

		r.Get("/lists", s.handleLists)
		r.Post("/lists", s.handleCreateList)
		r.Post("/lists/{id}/words", s.handleAddWordToList)
		r.Post("/lists/{id}/import", s.handleImportList)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleUpdateSettings)
	})

	return r
}
