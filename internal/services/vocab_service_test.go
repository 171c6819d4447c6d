package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/services"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/testutil/mocks"
)

func TestVocabService_CreateWord(t *testing.T) {
	words := new(mocks.MockWordRepository)
	words.On("Insert", mock.Anything, mock.MatchedBy(func(w models.Word) bool {
		return w.Text == "bonjour"
	})).Return(int64(7), nil)

	svc := services.NewVocabService(words)
	created, err := svc.CreateWord(context.Background(), models.Word{Text: "  bonjour  ", Translation: "hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "bonjour", created.Text)
}

func TestVocabService_CreateWord_EmptyText(t *testing.T) {
	words := new(mocks.MockWordRepository)

	svc := services.NewVocabService(words)
	_, err := svc.CreateWord(context.Background(), models.Word{Text: "   "})
	require.Error(t, err)
	words.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestVocabService_GetWord_NotFound(t *testing.T) {
	words := new(mocks.MockWordRepository)
	words.On("Get", mock.Anything, int64(5)).Return(nil, nil)

	svc := services.NewVocabService(words)
	_, err := svc.GetWord(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVocabService_CreateList(t *testing.T) {
	words := new(mocks.MockWordRepository)
	words.On("InsertList", mock.Anything, mock.Anything).Return(int64(3), nil)

	svc := services.NewVocabService(words)
	created, err := svc.CreateList(context.Background(), models.WordList{Name: "French A1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	_, err = svc.CreateList(context.Background(), models.WordList{Name: ""})
	require.Error(t, err)
}

func TestVocabService_ImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.csv")
	content := "word,translation,language,notes\nbonjour,hello,fr,\n,missing text,fr,\nmerci,thanks,fr,polite\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words := new(mocks.MockWordRepository)
	words.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil)
	words.On("AddToList", mock.Anything, int64(9), int64(1)).Return(nil)

	svc := services.NewVocabService(words)
	result, err := svc.ImportFile(context.Background(), 9, path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)
	words.AssertNumberOfCalls(t, "Insert", 2)
}

func TestVocabService_ImportFile_MissingFile(t *testing.T) {
	words := new(mocks.MockWordRepository)

	svc := services.NewVocabService(words)
	_, err := svc.ImportFile(context.Background(), 1, "/no/such/file.csv")
	require.Error(t, err)
}

func TestSettingsService_Update(t *testing.T) {
	repo := new(mocks.MockSettingsRepository)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := services.NewSettingsService(repo)

	updated, err := svc.Update(context.Background(), models.Settings{NewCardsPerDay: 10, ReviewsPerDay: 50})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.NewCardsPerDay)

	_, err = svc.Update(context.Background(), models.Settings{NewCardsPerDay: -1})
	require.Error(t, err)
	_, err = svc.Update(context.Background(), models.Settings{ReviewsPerDay: -1})
	require.Error(t, err)
}
