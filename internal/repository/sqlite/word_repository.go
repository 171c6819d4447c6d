package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/yusufdinc974/LinguaReader-sub001/internal/logger"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/models"
	"github.com/yusufdinc974/LinguaReader-sub001/internal/repository"
)

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) Insert(ctx context.Context, w models.Word) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word: text=%q", w.Text)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO words (text, translation, language, notes, familiarity)
VALUES (?, ?, ?, ?, ?)
`, w.Text, w.Translation, w.Language, w.Notes, w.Familiarity)
	if err != nil {
		log.Error("failed to insert word: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get word id: %v", err)
		return 0, err
	}
	log.Debug("word inserted: id=%d", id)
	return id, nil
}

func (r *wordRepository) Get(ctx context.Context, id int64) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%d", id)

	var w models.Word
	err := r.db.QueryRowContext(ctx, `
SELECT id, text, translation, language, notes, familiarity, created_at
FROM words
WHERE id = ?
`, id).Scan(&w.ID, &w.Text, &w.Translation, &w.Language, &w.Notes, &w.Familiarity, &w.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return &w, nil
}

func (r *wordRepository) List(ctx context.Context, filter models.WordFilter) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: list_id=%d, language=%s, search=%q", filter.ListID, filter.Language, filter.Search)

	query := sqlBuilder.Select("w.id", "w.text", "w.translation", "w.language", "w.notes", "w.familiarity", "w.created_at").
		From("words w")

	if filter.ListID != 0 {
		query = query.Join("word_list_words lw ON lw.word_id = w.id").
			Where(squirrel.Eq{"lw.list_id": filter.ListID})
	}
	if filter.Language != "" {
		query = query.Where(squirrel.Eq{"w.language": filter.Language})
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"w.text": like},
			squirrel.Like{"w.translation": like},
		})
	}

	query = query.OrderBy("w.created_at DESC", "w.id DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.Text, &w.Translation, &w.Language, &w.Notes, &w.Familiarity, &w.CreatedAt); err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	log.Debug("found %d words", len(words))
	return words, rows.Err()
}

func (r *wordRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("deleting word: id=%d", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete word: %v", err)
	}
	return err
}

func (r *wordRepository) InsertList(ctx context.Context, l models.WordList) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting word list: name=%q", l.Name)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO word_lists (name, description, language)
VALUES (?, ?, ?)
`, l.Name, l.Description, l.Language)
	if err != nil {
		log.Error("failed to insert word list: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *wordRepository) Lists(ctx context.Context) ([]models.WordList, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching word lists")

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, description, language, created_at
FROM word_lists
ORDER BY name
`)
	if err != nil {
		log.Error("failed to query word lists: %v", err)
		return nil, err
	}
	defer rows.Close()

	var lists []models.WordList
	for rows.Next() {
		var l models.WordList
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.Language, &l.CreatedAt); err != nil {
			log.Error("failed to scan word list row: %v", err)
			return nil, err
		}
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (r *wordRepository) AddToList(ctx context.Context, listID, wordID int64) error {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("adding word to list: list_id=%d, word_id=%d", listID, wordID)

	_, err := r.db.ExecContext(ctx, `
INSERT OR IGNORE INTO word_list_words (list_id, word_id)
VALUES (?, ?)
`, listID, wordID)
	if err != nil {
		log.Error("failed to add word to list: %v", err)
	}
	return err
}

func (r *wordRepository) WordIDsForLists(ctx context.Context, listIDs []int64) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching word ids for %d lists", len(listIDs))

	if len(listIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlBuilder.
		Select("DISTINCT word_id").
		From("word_list_words").
		Where(squirrel.Eq{"list_id": listIDs}).
		OrderBy("word_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query list words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan word id: %v", err)
			return nil, err
		}
		ids = append(ids, id)
	}
	log.Debug("found %d words across lists", len(ids))
	return ids, rows.Err()
}
