package jobs

import (
	"fmt"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.ImporterInterface
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.ImporterInterface) JobQueue {
	return &WorkerQueue{
		importPool: importPool,
		importer:   importer,
	}
}

func (q *WorkerQueue) EnqueueImport(listID int64, path string) error {
	ok := q.importPool.TrySubmit(&worker.ImportWordsJob{
		Importer: q.importer,
		ListID:   listID,
		Path:     path,
	})
	if !ok {
		return fmt.Errorf("import queue is full")
	}
	return nil
}
