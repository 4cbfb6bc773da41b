// Package repository implements the document store on PostgreSQL. Documents
// live in a single table keyed by path; fields are kept as JSONB.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/storage"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		parent TEXT NOT NULL,
		id TEXT NOT NULL,
		fields JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS documents_parent_idx ON documents (parent);`

func InitDB(ctx context.Context, ps string) (*sql.DB, error) {
	db, err := sql.Open("pgx", ps)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return db, nil
}

type DocumentRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateDocumentRepository(db *sql.DB, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *DocumentRepository) GetDocument(ctx context.Context, path string) (storage.Document, error) {
	if _, _, err := storage.SplitDocument(path); err != nil {
		return storage.Document{}, err
	}

	row := r.db.QueryRowContext(ctx,
		"SELECT id, fields, created_at FROM documents WHERE path = $1;", path)

	doc, err := scanDocument(row, path)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Document{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Document{}, err
	}
	return doc, nil
}

func (r *DocumentRepository) SetFields(ctx context.Context, path string, fields map[string]any) error {
	parent, id, err := storage.SplitDocument(path)
	if err != nil {
		return err
	}

	b, err := encodeFields(fields)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO documents(path, parent, id, fields) VALUES ($1, $2, $3, $4)
		ON CONFLICT (path) DO UPDATE SET fields = documents.fields || EXCLUDED.fields;`,
		path, parent, id, string(b),
	)
	if err != nil {
		r.logger.Error("set fields failed", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

func (r *DocumentRepository) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := storage.ValidateCollection(collection); err != nil {
		return "", err
	}

	b, err := encodeFields(fields)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO documents(path, parent, id, fields) VALUES ($1, $2, $3, $4);",
		storage.Join(collection, id), collection, id, string(b),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", storage.ErrConflict
		}
		r.logger.Error("add document failed", zap.String("collection", collection), zap.Error(err))
		return "", err
	}

	return id, nil
}

func (r *DocumentRepository) ListDocuments(ctx context.Context, collection string) ([]storage.Document, error) {
	if err := storage.ValidateCollection(collection); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, fields, created_at FROM documents WHERE parent = $1 ORDER BY id;", collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]storage.Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		var createdAt time.Time
		if err := rows.Scan(&id, &raw, &createdAt); err != nil {
			return nil, err
		}

		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, storage.Document{
			ID:        id,
			Path:      storage.Join(collection, id),
			Fields:    fields,
			CreatedAt: createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *DocumentRepository) DeleteDocument(ctx context.Context, path string) error {
	if _, _, err := storage.SplitDocument(path); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE path = $1;", path)
	return err
}

// DeleteBatch removes all paths in one transaction.
func (r *DocumentRepository) DeleteBatch(ctx context.Context, paths []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, p := range paths {
		if _, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE path = $1;", p); err != nil {
			tx.Rollback()
			r.logger.Error("batch delete rolled back", zap.String("path", p), zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *DocumentRepository) CountDocuments(ctx context.Context, collection string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM documents WHERE parent = $1;", collection).Scan(&n)
	return n, err
}

func (r *DocumentRepository) PingContext(c context.Context) error {
	return r.db.PingContext(c)
}

func scanDocument(row *sql.Row, path string) (storage.Document, error) {
	var id string
	var raw []byte
	var createdAt time.Time
	if err := row.Scan(&id, &raw, &createdAt); err != nil {
		return storage.Document{}, err
	}

	fields, err := decodeFields(raw)
	if err != nil {
		return storage.Document{}, err
	}

	return storage.Document{ID: id, Path: path, Fields: fields, CreatedAt: createdAt}, nil
}

func encodeFields(fields map[string]any) ([]byte, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return b, nil
}

func decodeFields(raw []byte) (map[string]any, error) {
	fields := make(map[string]any)
	if len(raw) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}
