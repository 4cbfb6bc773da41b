package storage

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryStorage struct {
	mu   sync.RWMutex
	docs map[string]Document
	now  func() time.Time
}

func CreateMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		docs: make(map[string]Document),
		now:  time.Now,
	}
}

func (m *MemoryStorage) GetDocument(_ context.Context, path string) (Document, error) {
	if _, _, err := SplitDocument(path); err != nil {
		return Document{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[path]
	if !ok {
		return Document{}, ErrNotFound
	}
	return copyDocument(doc), nil
}

func (m *MemoryStorage) SetFields(_ context.Context, path string, fields map[string]any) error {
	return m.set(path, fields, m.now())
}

func (m *MemoryStorage) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := ValidateCollection(collection); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := m.SetFields(ctx, Join(collection, id), fields); err != nil {
		return "", err
	}
	return id, nil
}

// ListDocuments returns the direct children of collection ordered by id.
func (m *MemoryStorage) ListDocuments(_ context.Context, collection string) ([]Document, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0)
	for _, path := range slices.Sorted(maps.Keys(m.docs)) {
		parent, _, _ := SplitDocument(path)
		if parent == collection {
			docs = append(docs, copyDocument(m.docs[path]))
		}
	}
	return docs, nil
}

func (m *MemoryStorage) DeleteDocument(_ context.Context, path string) error {
	if _, _, err := SplitDocument(path); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.docs, path)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) DeleteBatch(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if err := m.DeleteDocument(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStorage) CountDocuments(ctx context.Context, collection string) (int, error) {
	docs, err := m.ListDocuments(ctx, collection)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (m *MemoryStorage) PingContext(context.Context) error {
	return nil
}

// set merges fields into path. createdAt is applied only when the document
// is created.
func (m *MemoryStorage) set(path string, fields map[string]any, createdAt time.Time) error {
	_, id, err := SplitDocument(path)
	if err != nil {
		return err
	}

	cloned, err := cloneFields(fields)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[path]
	if !ok {
		doc = Document{ID: id, Path: path, Fields: map[string]any{}, CreatedAt: createdAt}
	}
	maps.Copy(doc.Fields, cloned)
	m.docs[path] = doc
	return nil
}

// copyDocument deep copies fields; stored fields already survived a JSON
// round trip so the copy cannot fail.
func copyDocument(d Document) Document {
	if fields, err := cloneFields(d.Fields); err == nil {
		d.Fields = fields
	}
	return d
}
