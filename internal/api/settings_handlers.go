package api

import (
	"net/http"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Settings.Get(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := decodeJSON(r, &settings); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.Settings.Update(r.Context(), settings)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
