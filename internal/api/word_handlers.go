package api

import (
	"net/http"
	"strings"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	filter := models.WordFilter{
		Language: r.URL.Query().Get("language"),
		Search:   r.URL.Query().Get("search"),
		Limit:    queryIntOr(r, "limit", 100),
		Offset:   queryIntOr(r, "offset", 0),
	}
	if listID := queryIntOr(r, "list_id", 0); listID > 0 {
		filter.ListID = int64(listID)
	}

	words, err := s.Vocab.ListWords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if words == nil {
		words = []models.Word{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"words": words})
}

func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var word models.Word
	if err := decodeJSON(r, &word); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.Vocab.CreateWord(r.Context(), word)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	word, err := s.Vocab.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, word)
}

func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Vocab.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.Vocab.Lists(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if lists == nil {
		lists = []models.WordList{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"lists": lists})
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var list models.WordList
	if err := decodeJSON(r, &list); err != nil {
		handleError(w, r, err)
		return
	}

	created, err := s.Vocab.CreateList(r.Context(), list)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

type addWordRequest struct {
	WordID int64 `json:"word_id"`
}

func (s *Server) handleAddWordToList(w http.ResponseWriter, r *http.Request) {
	listID, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if req.WordID < 1 {
		handleError(w, r, errors.NewValidationError("word_id", "word_id is required"))
		return
	}

	if err := s.Vocab.AddWordToList(r.Context(), listID, req.WordID); err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"added": true})
}

type importRequest struct {
	Path string `json:"path"`
}

// handleImportList enqueues a background import of a word-list file. The
// response is 202 Accepted: progress is reported through the logs.
func (s *Server) handleImportList(w http.ResponseWriter, r *http.Request) {
	listID, err := urlParamID(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		handleError(w, r, errors.NewValidationError("path", "path is required"))
		return
	}

	if err := s.Imports.EnqueueImport(listID, req.Path); err != nil {
		handleError(w, r, errors.NewConflictError(err.Error()))
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]any{"queued": true})
}
