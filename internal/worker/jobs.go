package worker

import (
	"context"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/vocab"
)

// ImporterInterface defines the file-import entrypoint used by jobs.
// This avoids import cycles by not importing the services package.
type ImporterInterface interface {
	ImportFile(ctx context.Context, listID int64, path string) (*vocab.ImportResult, error)
}

// ImportWordsJob parses an uploaded word-list file and inserts its rows.
type ImportWordsJob struct {
	Importer ImporterInterface
	ListID   int64
	Path     string
}

func (j *ImportWordsJob) Name() string { return "import_words" }

func (j *ImportWordsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"list_id": j.ListID,
		"path":    j.Path,
	})

	result, err := j.Importer.ImportFile(ctx, j.ListID, j.Path)
	if err != nil {
		log.Error("import failed: %v", err)
		return err
	}

	log.Info("import done: imported=%d, skipped=%d, errors=%d",
		result.Imported, result.Skipped, len(result.Errors))
	return nil
}
