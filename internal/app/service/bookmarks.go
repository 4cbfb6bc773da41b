package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/recipe"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const bookmarksField = "bookmarks"

// DefaultFanOut bounds concurrent document loads when listing.
const DefaultFanOut = 8

// RecipeGetter loads one recipe by bookmark key.
type RecipeGetter interface {
	Get(ctx context.Context, key bookmark.Key) (recipe.Normalized, error)
}

type BookmarkService struct {
	store   Storage
	recipes RecipeGetter
	logger  *zap.Logger
	fanOut  int

	users    *keyedLocker
	inflight *flightSet
}

func NewBookmarkService(store Storage, recipes RecipeGetter, logger *zap.Logger, fanOut int) *BookmarkService {
	if fanOut <= 0 {
		fanOut = DefaultFanOut
	}

	return &BookmarkService{
		store:    store,
		recipes:  recipes,
		logger:   logger,
		fanOut:   fanOut,
		users:    newKeyedLocker(),
		inflight: newFlightSet(),
	}
}

// Load returns the user's bookmark set. A user without a document has no
// bookmarks.
func (s *BookmarkService) Load(ctx context.Context, userID string) (bookmark.Set, error) {
	doc, err := s.store.GetDocument(ctx, storage.UserDoc(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return bookmark.NewSet(), nil
	}
	if err != nil {
		return nil, err
	}

	return bookmark.SetFromValue(doc.Field(bookmarksField)), nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID string, key bookmark.Key) (bool, error) {
	if _, ok := bookmark.Encode(key); !ok {
		return false, ErrInvalidKey
	}

	set, err := s.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	return bookmark.IsMember(key, set), nil
}

// Toggle flips membership of key and persists the new set. It reports
// whether key is bookmarked afterwards. A toggle of the same key for the
// same user that is still running fails with ErrToggleInFlight; toggles of
// different keys are serialized per user.
func (s *BookmarkService) Toggle(ctx context.Context, userID string, key bookmark.Key) (bool, error) {
	encoded, ok := bookmark.Encode(key)
	if !ok {
		return false, ErrInvalidKey
	}

	flight := userID + "\n" + encoded
	if !s.inflight.Acquire(flight) {
		return false, ErrToggleInFlight
	}
	defer s.inflight.Release(flight)

	unlock := s.users.Lock(userID)
	defer unlock()

	set, err := s.Load(ctx, userID)
	if err != nil {
		return false, err
	}

	next, member := bookmark.Toggle(key, set)
	err = s.store.SetFields(ctx, storage.UserDoc(userID), map[string]any{
		bookmarksField: next.Strings(),
	})
	if err != nil {
		s.logger.Error("saving bookmarks failed", zap.String("user", userID), zap.Error(err))
		return false, err
	}

	s.logger.Debug("bookmark toggled", zap.String("user", userID), zap.String("key", encoded), zap.Bool("member", member))
	return member, nil
}

// List loads every bookmarked recipe. Undecodable keys and recipes that
// fail to load are skipped; the result follows key order.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]recipe.Normalized, error) {
	set, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	keys := set.Keys()
	loaded := make([]*recipe.Normalized, len(keys))

	var grp errgroup.Group
	grp.SetLimit(s.fanOut)
	for i, k := range keys {
		grp.Go(func() error {
			r, err := s.recipes.Get(ctx, k)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					s.logger.Debug("bookmarked recipe missing", zap.Stringer("key", k))
				} else {
					s.logger.Warn("loading bookmarked recipe failed", zap.Stringer("key", k), zap.Error(err))
				}
				return nil
			}
			loaded[i] = &r
			return nil
		})
	}
	_ = grp.Wait()

	out := make([]recipe.Normalized, 0, len(keys))
	for _, r := range loaded {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
