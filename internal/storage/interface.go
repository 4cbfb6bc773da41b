package storage

import "context"

// Store is a hierarchical document store. Paths alternate collection and
// document segments ("fridge/f1/recipes/r1").
type Store interface {
	// GetDocument returns ErrNotFound when the document does not exist.
	GetDocument(ctx context.Context, path string) (Document, error)
	// SetFields merges fields into the document, creating it if absent.
	SetFields(ctx context.Context, path string, fields map[string]any) error
	// AddDocument creates a document with a store generated id.
	AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error)
	ListDocuments(ctx context.Context, collection string) ([]Document, error)
	// DeleteDocument is a no-op for missing documents.
	DeleteDocument(ctx context.Context, path string) error
	DeleteBatch(ctx context.Context, paths []string) error
	CountDocuments(ctx context.Context, collection string) (int, error)
	PingContext(ctx context.Context) error
}
