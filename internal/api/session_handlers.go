package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

type startSessionRequest struct {
	ListIDs []int64 `json:"list_ids"`
	Mode    string  `json:"mode"`
	Style   string  `json:"style"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.Quiz.StartSession(r.Context(), req.ListIDs, req.Mode, req.Style)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if session == nil {
		respondJSON(w, http.StatusOK, map[string]any{
			"session": nil,
			"message": "nothing to review",
		})
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"session": session})
}

func (s *Server) handleActiveSession(w http.ResponseWriter, r *http.Request) {
	session := s.Quiz.ActiveSession()
	if session == nil {
		handleError(w, r, errors.NewNotFoundError("session", "active"))
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"session": session})
}

type answerRequest struct {
	WordID int64         `json:"word_id"`
	Rating models.Rating `json:"rating"`
}

func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.WordID < 1 {
		handleError(w, r, errors.NewValidationError("word_id", "word_id is required"))
		return
	}

	result, err := s.Quiz.RecordAnswer(r.Context(), sessionID, req.WordID, req.Rating)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	session, err := s.Quiz.FinishSession(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"session": session})
}

func (s *Server) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := s.Quiz.CancelSession(r.Context(), sessionID); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"cancelled": true})
}

func (s *Server) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryIntOr(r, "limit", 50)

	history, err := s.Stats.History(r.Context(), limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if history == nil {
		history = []models.QuizSession{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"sessions": history})
}
