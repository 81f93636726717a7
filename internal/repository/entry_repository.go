//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dashboard/backend/internal/model"
)

// EntryRepository persists document tree entries keyed by id.
type EntryRepository interface {
	List(ctx context.Context) ([]model.Entry, error)
	Create(ctx context.Context, entry model.Entry) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}

// Deletes are chunked to stay under SQLite's bound-parameter limit.
const deleteBatchSize = 500

type entryRepository struct {
	db *sql.DB
}

func NewEntryRepository(db *sql.DB) EntryRepository {
	return &entryRepository{db: db}
}

const selectEntryColumns = `SELECT id, name, kind, parent_id, size, updated_at FROM documents`

// List returns every entry in creation order. Snowflake ids are time ordered, so id order
// keeps parents ahead of their children.
func (r *entryRepository) List(ctx context.Context) ([]model.Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntryColumns+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *entryRepository) Create(ctx context.Context, entry model.Entry) error {
	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	stamp := formatTime(updatedAt)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, kind, parent_id, size, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Name, model.KindName(entry.Kind), nullableInt64(entry.ParentID), nullableString(model.KindSize(entry.Kind)), stamp, stamp)
	return err
}

// DeleteBatch removes all ids in a single transaction and returns the number of rows removed.
func (r *entryRepository) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin delete batch: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for start := 0; start < len(ids); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(ids))
		chunk := ids[start:end]

		args := make([]interface{}, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE id IN (`+placeholders(len(chunk))+`)`, args...)
		if err != nil {
			return 0, fmt.Errorf("delete documents: %w", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit delete batch: %w", err)
	}
	return total, nil
}

func scanEntry(row *sql.Rows) (model.Entry, error) {
	var (
		entry     model.Entry
		kind      string
		parentID  sql.NullInt64
		size      sql.NullString
		updatedAt string
	)
	if err := row.Scan(&entry.ID, &entry.Name, &kind, &parentID, &size, &updatedAt); err != nil {
		return model.Entry{}, err
	}

	if parentID.Valid {
		pid := parentID.Int64
		entry.ParentID = &pid
	}
	var sizePtr *string
	if size.Valid {
		sizePtr = &size.String
	}
	k, err := model.ParseKind(kind, sizePtr)
	if err != nil {
		return model.Entry{}, fmt.Errorf("entry %d: %w", entry.ID, err)
	}
	entry.Kind = k

	entry.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.Entry{}, fmt.Errorf("entry %d: parse updated_at: %w", entry.ID, err)
	}
	return entry, nil
}
