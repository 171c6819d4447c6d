package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/errors"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/vocab"
)

// VocabService manages the word and word-list inventory.
type VocabService interface {
	CreateWord(ctx context.Context, word models.Word) (*models.Word, error)
	GetWord(ctx context.Context, id int64) (*models.Word, error)
	ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	DeleteWord(ctx context.Context, id int64) error
	CreateList(ctx context.Context, list models.WordList) (*models.WordList, error)
	Lists(ctx context.Context) ([]models.WordList, error)
	AddWordToList(ctx context.Context, listID, wordID int64) error
	ImportFile(ctx context.Context, listID int64, path string) (*vocab.ImportResult, error)
}

type vocabService struct {
	words repository.WordRepository
}

// NewVocabService creates a new VocabService
func NewVocabService(words repository.WordRepository) VocabService {
	return &vocabService{words: words}
}

func (s *vocabService) CreateWord(ctx context.Context, word models.Word) (*models.Word, error) {
	word.Text = strings.TrimSpace(word.Text)
	if word.Text == "" {
		return nil, errors.NewValidationError("text", "text is required")
	}

	id, err := s.words.Insert(ctx, word)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	word.ID = id
	return &word, nil
}

func (s *vocabService) GetWord(ctx context.Context, id int64) (*models.Word, error) {
	word, err := s.words.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", fmt.Sprintf("%d", id))
	}
	return word, nil
}

func (s *vocabService) ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	words, err := s.words.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

func (s *vocabService) DeleteWord(ctx context.Context, id int64) error {
	if err := s.words.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Error("failed to delete word: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *vocabService) CreateList(ctx context.Context, list models.WordList) (*models.WordList, error) {
	list.Name = strings.TrimSpace(list.Name)
	if list.Name == "" {
		return nil, errors.NewValidationError("name", "name is required")
	}

	id, err := s.words.InsertList(ctx, list)
	if err != nil {
		logger.FromContext(ctx).Error("failed to insert list: %v", err)
		return nil, errors.NewInternalError(err)
	}
	list.ID = id
	return &list, nil
}

func (s *vocabService) Lists(ctx context.Context) ([]models.WordList, error) {
	lists, err := s.words.Lists(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("failed to load lists: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return lists, nil
}

func (s *vocabService) AddWordToList(ctx context.Context, listID, wordID int64) error {
	if err := s.words.AddToList(ctx, listID, wordID); err != nil {
		logger.FromContext(ctx).Error("failed to add word %d to list %d: %v", wordID, listID, err)
		return errors.NewInternalError(err)
	}
	return nil
}

// ImportFile parses the file at path and inserts its rows as words on the
// given list. Rows with an empty text column are skipped, and per-row insert
// failures are collected instead of aborting the run.
func (s *vocabService) ImportFile(ctx context.Context, listID int64, path string) (*vocab.ImportResult, error) {
	log := logger.FromContext(ctx)
	log.Info("importing word list: list_id=%d, path=%s", listID, path)

	rows, err := vocab.ReadFile(path)
	if err != nil {
		log.Error("failed to read import file: %v", err)
		return nil, errors.NewBadRequestError(err.Error())
	}

	result := &vocab.ImportResult{TotalRows: len(rows)}
	for i, row := range rows {
		if row.Text == "" {
			result.Skipped++
			continue
		}
		word := models.Word{
			Text:        row.Text,
			Translation: row.Translation,
			Language:    row.Language,
			Notes:       row.Notes,
		}
		id, err := s.words.Insert(ctx, word)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if err := s.words.AddToList(ctx, listID, id); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	log.Info("import finished: list_id=%d, imported=%d, skipped=%d, errors=%d",
		listID, result.Imported, result.Skipped, len(result.Errors))
	return result, nil
}
