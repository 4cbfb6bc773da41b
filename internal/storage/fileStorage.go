package storage

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	opSet    = "set"
	opDelete = "delete"
)

// journalEntry is one line of the journal file.
type journalEntry struct {
	Op     string         `json:"op"`
	Path   string         `json:"path"`
	Fields map[string]any `json:"fields,omitempty"`
	At     time.Time      `json:"at"`
}

// FileStorage keeps documents in memory and appends every change to a JSON
// lines journal. The journal is replayed on open.
type FileStorage struct {
	mem    *MemoryStorage
	logger *zap.Logger

	mu   sync.Mutex
	file *os.File
}

func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		mem:    CreateMemoryStorage(),
		logger: logger,
		file:   file,
	}

	n, err := fs.replay()
	if err != nil {
		file.Close()
		return nil, err
	}
	logger.Info("journal replayed", zap.String("path", p), zap.Int("entries", n))

	return fs, nil
}

func (fs *FileStorage) replay() (int, error) {
	scanner := bufio.NewScanner(fs.file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var e journalEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return n, fmt.Errorf("failed to parse journal line %d: %w", n+1, err)
		}
		if err := fs.apply(e); err != nil {
			return n, fmt.Errorf("failed to apply journal line %d: %w", n+1, err)
		}
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("error reading journal: %w", err)
	}
	return n, nil
}

func (fs *FileStorage) apply(e journalEntry) error {
	switch e.Op {
	case opSet:
		return fs.mem.set(e.Path, e.Fields, e.At)
	case opDelete:
		return fs.mem.DeleteDocument(context.Background(), e.Path)
	default:
		return fmt.Errorf("unknown journal op %q", e.Op)
	}
}

// record appends entries to the journal and applies them to memory once
// the write succeeded, so memory never holds a change the journal lacks.
func (fs *FileStorage) record(entries ...journalEntry) error {
	var buf bytes.Buffer
	for _, e := range entries {
		if _, _, err := SplitDocument(e.Path); err != nil {
			return err
		}

		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	for _, e := range entries {
		if err := fs.apply(e); err != nil {
			return err
		}
	}
	return nil
}

func (fs *FileStorage) GetDocument(ctx context.Context, path string) (Document, error) {
	return fs.mem.GetDocument(ctx, path)
}

func (fs *FileStorage) SetFields(_ context.Context, path string, fields map[string]any) error {
	return fs.record(journalEntry{Op: opSet, Path: path, Fields: fields, At: fs.mem.now()})
}

func (fs *FileStorage) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := ValidateCollection(collection); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := fs.SetFields(ctx, Join(collection, id), fields); err != nil {
		return "", err
	}
	return id, nil
}

func (fs *FileStorage) ListDocuments(ctx context.Context, collection string) ([]Document, error) {
	return fs.mem.ListDocuments(ctx, collection)
}

func (fs *FileStorage) DeleteDocument(ctx context.Context, path string) error {
	return fs.DeleteBatch(ctx, []string{path})
}

func (fs *FileStorage) DeleteBatch(_ context.Context, paths []string) error {
	entries := make([]journalEntry, 0, len(paths))
	for _, p := range paths {
		if _, _, err := SplitDocument(p); err != nil {
			return err
		}
		entries = append(entries, journalEntry{Op: opDelete, Path: p, At: fs.mem.now()})
	}

	return fs.record(entries...)
}

func (fs *FileStorage) CountDocuments(ctx context.Context, collection string) (int, error) {
	return fs.mem.CountDocuments(ctx, collection)
}

// PingContext reports whether the journal file is still usable.
func (fs *FileStorage) PingContext(context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, err := fs.file.Stat()
	return err
}

func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.file.Close()
}
