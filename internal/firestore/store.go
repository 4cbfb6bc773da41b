// Package firestore implements the document store on Google Cloud Firestore.
package firestore

import (
	"context"
	"errors"
	"fmt"

	gcfirestore "cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/fridgebook/internal/storage"
)

type Store struct {
	client *gcfirestore.Client
	logger *zap.Logger
}

func New(ctx context.Context, projectID string, logger *zap.Logger) (*Store, error) {
	client, err := gcfirestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore: creating client: %w", err)
	}

	return &Store{client: client, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) doc(path string) (*gcfirestore.DocumentRef, error) {
	if _, _, err := storage.SplitDocument(path); err != nil {
		return nil, err
	}
	ref := s.client.Doc(path)
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidPath, path)
	}
	return ref, nil
}

func (s *Store) collection(path string) (*gcfirestore.CollectionRef, error) {
	if err := storage.ValidateCollection(path); err != nil {
		return nil, err
	}
	ref := s.client.Collection(path)
	if ref == nil {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidPath, path)
	}
	return ref, nil
}

func (s *Store) GetDocument(ctx context.Context, path string) (storage.Document, error) {
	ref, err := s.doc(path)
	if err != nil {
		return storage.Document{}, err
	}

	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return storage.Document{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Document{}, fmt.Errorf("firestore: getting %s: %w", path, err)
	}

	return toDocument(snap), nil
}

func (s *Store) SetFields(ctx context.Context, path string, fields map[string]any) error {
	ref, err := s.doc(path)
	if err != nil {
		return err
	}
	if fields == nil {
		fields = map[string]any{}
	}

	if _, err := ref.Set(ctx, fields, gcfirestore.MergeAll); err != nil {
		return fmt.Errorf("firestore: saving %s: %w", path, err)
	}
	return nil
}

func (s *Store) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	col, err := s.collection(collection)
	if err != nil {
		return "", err
	}
	if fields == nil {
		fields = map[string]any{}
	}

	ref, _, err := col.Add(ctx, fields)
	if status.Code(err) == codes.AlreadyExists {
		return "", storage.ErrConflict
	}
	if err != nil {
		return "", fmt.Errorf("firestore: adding to %s: %w", collection, err)
	}
	return ref.ID, nil
}

func (s *Store) ListDocuments(ctx context.Context, collection string) ([]storage.Document, error) {
	col, err := s.collection(collection)
	if err != nil {
		return nil, err
	}

	docs := make([]storage.Document, 0)
	iter := col.Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore: listing %s: %w", collection, err)
		}
		docs = append(docs, toDocument(snap))
	}
	return docs, nil
}

func (s *Store) DeleteDocument(ctx context.Context, path string) error {
	ref, err := s.doc(path)
	if err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("firestore: deleting %s: %w", path, err)
	}
	return nil
}

// DeleteBatch queues all deletes on a bulk writer and waits for them.
func (s *Store) DeleteBatch(ctx context.Context, paths []string) error {
	refs := make([]*gcfirestore.DocumentRef, 0, len(paths))
	for _, p := range paths {
		ref, err := s.doc(p)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*gcfirestore.BulkWriterJob, 0, len(refs))
	for _, ref := range refs {
		job, err := bw.Delete(ref)
		if err != nil {
			bw.End()
			return fmt.Errorf("firestore: queueing delete of %s: %w", ref.Path, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	var errs []error
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		s.logger.Error("bulk delete failed", zap.Int("failed", len(errs)), zap.Int("total", len(jobs)))
		return fmt.Errorf("firestore: bulk delete: %w", errors.Join(errs...))
	}
	return nil
}

func (s *Store) CountDocuments(ctx context.Context, collection string) (int, error) {
	col, err := s.collection(collection)
	if err != nil {
		return 0, err
	}

	res, err := col.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("firestore: counting %s: %w", collection, err)
	}

	v, ok := res["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("firestore: unexpected count result %T", res["all"])
	}
	return int(v.GetIntegerValue()), nil
}

func (s *Store) PingContext(ctx context.Context) error {
	_, err := s.client.Collection(storage.UsersCollection).Limit(1).Documents(ctx).GetAll()
	return err
}

func toDocument(snap *gcfirestore.DocumentSnapshot) storage.Document {
	fields := snap.Data()
	if fields == nil {
		fields = map[string]any{}
	}

	return storage.Document{
		ID:        snap.Ref.ID,
		Path:      relativePath(snap.Ref),
		Fields:    fields,
		CreatedAt: snap.CreateTime,
	}
}

// relativePath rebuilds the slash path of ref below the database root.
func relativePath(ref *gcfirestore.DocumentRef) string {
	var segs []string
	for d := ref; d != nil; {
		segs = append([]string{d.Parent.ID, d.ID}, segs...)
		d = d.Parent.Parent
	}
	return storage.Join(segs...)
}
