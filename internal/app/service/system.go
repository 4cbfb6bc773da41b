package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/storage"
)

type SystemService struct {
	store Storage
}

func NewSystemService(store Storage) *SystemService {
	return &SystemService{store: store}
}

func (s *SystemService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// Stats counts users, fridges and global recipes.
func (s *SystemService) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	grp, gctx := errgroup.WithContext(ctx)
	count := func(collection string, dst *int) {
		grp.Go(func() error {
			n, err := s.store.CountDocuments(gctx, collection)
			*dst = n
			return err
		})
	}
	count(storage.UsersCollection, &stats.Users)
	count(storage.FridgeCollection, &stats.Fridges)
	count(storage.RecipesCollection, &stats.Recipes)

	if err := grp.Wait(); err != nil {
		return models.Stats{}, err
	}
	return stats, nil
}
