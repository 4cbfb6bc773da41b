// Package worker batches fridge ingredient deletions.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBatchSize     = 25
	DefaultFlushInterval = 10 * time.Second
)

type Repo interface {
	DeleteBatch(context.Context, []string) error
}

type DeleteTaskWorker struct {
	in       chan string
	logger   *zap.Logger
	repo     Repo
	batch    int
	interval time.Duration
}

type Option func(*DeleteTaskWorker)

// WithBatchSize sets how many queued paths trigger an immediate flush.
func WithBatchSize(n int) Option {
	return func(w *DeleteTaskWorker) { w.batch = n }
}

func WithFlushInterval(d time.Duration) Option {
	return func(w *DeleteTaskWorker) { w.interval = d }
}

func NewDeleteRecordWorker(logger *zap.Logger, repo Repo, opts ...Option) *DeleteTaskWorker {
	w := &DeleteTaskWorker{
		in:       make(chan string),
		logger:   logger,
		repo:     repo,
		batch:    DefaultBatchSize,
		interval: DefaultFlushInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// GetInChannel returns the channel accepting document paths to delete.
func (s *DeleteTaskWorker) GetInChannel() chan<- string {
	return s.in
}

// FlushRecords collects paths and deletes them when more than the batch
// size is queued or on every tick. It returns after a final flush once ctx
// is cancelled.
func (s *DeleteTaskWorker) FlushRecords(ctx context.Context) {
	s.logger.Info("delete worker started", zap.Int("batch", s.batch), zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var paths []string

	flush := func() {
		if len(paths) == 0 {
			return
		}
		s.logger.Info("flushing deletes", zap.Int("count", len(paths)))

		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
		defer cancel()

		if err := s.repo.DeleteBatch(fctx, paths); err != nil {
			s.logger.Error("cannot delete documents", zap.Int("count", len(paths)), zap.Error(err))
		}
		// failed batches are dropped, not retried
		paths = nil
	}

	for {
		select {
		case p := <-s.in:
			paths = append(paths, p)
			if len(paths) > s.batch {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			s.logger.Info("delete worker stopped")
			return
		}
	}
}
