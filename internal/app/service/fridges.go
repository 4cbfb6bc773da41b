package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const fridgesField = "fridges"

type FridgeService struct {
	store  Storage
	logger *zap.Logger
	fanOut int
	users  *keyedLocker
	now    func() time.Time

	// deletions receives ingredient document paths for batched removal.
	deletions chan<- string
}

func NewFridgeService(store Storage, logger *zap.Logger, deletions chan<- string, fanOut int) *FridgeService {
	if fanOut <= 0 {
		fanOut = DefaultFanOut
	}

	return &FridgeService{
		store:     store,
		logger:    logger,
		fanOut:    fanOut,
		users:     newKeyedLocker(),
		now:       time.Now,
		deletions: deletions,
	}
}

// Create adds a fridge owned by userID and joins the user to it.
func (s *FridgeService) Create(ctx context.Context, userID, title, description string) (models.Fridge, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return models.Fridge{}, fmt.Errorf("%w: title and description are required", ErrInvalidInput)
	}

	created := s.now().UTC()
	id, err := s.store.AddDocument(ctx, storage.FridgeCollection, map[string]any{
		"userID":      userID,
		"title":       title,
		"description": description,
		"createdAt":   created,
	})
	if err != nil {
		return models.Fridge{}, err
	}

	if err := s.updateFridges(ctx, userID, func(ids []string) []string {
		return appendUnique(ids, id)
	}); err != nil {
		return models.Fridge{}, err
	}

	s.logger.Info("fridge created", zap.String("fridge", id), zap.String("user", userID))
	return models.Fridge{ID: id, OwnerID: userID, Title: title, Description: description, CreatedAt: created}, nil
}

// Join adds an existing fridge to the user's list.
func (s *FridgeService) Join(ctx context.Context, userID, fridgeID string) error {
	if _, err := s.store.GetDocument(ctx, storage.FridgeDoc(fridgeID)); err != nil {
		return err
	}

	return s.updateFridges(ctx, userID, func(ids []string) []string {
		return appendUnique(ids, fridgeID)
	})
}

func (s *FridgeService) Leave(ctx context.Context, userID, fridgeID string) error {
	return s.updateFridges(ctx, userID, func(ids []string) []string {
		return slices.DeleteFunc(ids, func(id string) bool { return id == fridgeID })
	})
}

// List loads the user's fridges in list order. Fridges that no longer
// exist are skipped.
func (s *FridgeService) List(ctx context.Context, userID string) ([]models.Fridge, error) {
	ids, err := userFridgeIDs(ctx, s.store, userID)
	if err != nil {
		return nil, err
	}

	loaded := make([]*models.Fridge, len(ids))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(s.fanOut)
	for i, id := range ids {
		grp.Go(func() error {
			doc, err := s.store.GetDocument(gctx, storage.FridgeDoc(id))
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			f := fridgeFromDocument(doc)
			loaded[i] = &f
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	out := make([]models.Fridge, 0, len(ids))
	for _, f := range loaded {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out, nil
}

// AddIngredient stores an ingredient in a fridge userID has joined.
func (s *FridgeService) AddIngredient(ctx context.Context, userID, fridgeID string, req models.AddIngredientRequest) (models.FridgeIngredient, error) {
	name := strings.TrimSpace(req.Ingredient)
	quantity := strings.TrimSpace(req.Quantity)
	unit := strings.TrimSpace(req.Unit)
	if name == "" || quantity == "" {
		return models.FridgeIngredient{}, fmt.Errorf("%w: ingredient and quantity are required", ErrInvalidInput)
	}

	if err := requireMember(ctx, s.store, userID, fridgeID); err != nil {
		return models.FridgeIngredient{}, err
	}
	if _, err := s.store.GetDocument(ctx, storage.FridgeDoc(fridgeID)); err != nil {
		return models.FridgeIngredient{}, err
	}

	created := s.now().UTC()
	id, err := s.store.AddDocument(ctx, storage.FridgeIngredients(fridgeID), map[string]any{
		"ingredient": name,
		"quantity":   quantity,
		"unit":       unit,
		"createdAt":  created,
	})
	if err != nil {
		return models.FridgeIngredient{}, err
	}

	return models.FridgeIngredient{
		ID:         id,
		Ingredient: name,
		Quantity:   quantity,
		Unit:       unit,
		Label:      IngredientLabel(name, quantity, unit),
		CreatedAt:  created,
	}, nil
}

// ListIngredients returns the fridge's ingredients, newest first.
func (s *FridgeService) ListIngredients(ctx context.Context, userID, fridgeID string) ([]models.FridgeIngredient, error) {
	if err := requireMember(ctx, s.store, userID, fridgeID); err != nil {
		return nil, err
	}

	docs, err := s.store.ListDocuments(ctx, storage.FridgeIngredients(fridgeID))
	if err != nil {
		return nil, err
	}
	sortNewestFirst(docs)

	out := make([]models.FridgeIngredient, 0, len(docs))
	for _, d := range docs {
		name, quantity, unit := d.String("ingredient"), d.String("quantity"), d.String("unit")
		out = append(out, models.FridgeIngredient{
			ID:         d.ID,
			Ingredient: name,
			Quantity:   quantity,
			Unit:       unit,
			Label:      IngredientLabel(name, quantity, unit),
			CreatedAt:  createdAt(d),
		})
	}
	return out, nil
}

// RemoveIngredients queues the ingredients for batched deletion and returns
// without waiting for the store.
func (s *FridgeService) RemoveIngredients(ctx context.Context, userID, fridgeID string, ids []string) error {
	if err := requireMember(ctx, s.store, userID, fridgeID); err != nil {
		return err
	}

	paths := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || strings.Contains(id, "/") {
			return fmt.Errorf("%w: ingredient id %q", ErrInvalidInput, id)
		}
		paths = append(paths, storage.FridgeIngredientDoc(fridgeID, id))
	}

	s.logger.Info("Sending to a delete channel", zap.Int("count", len(paths)))
	for _, p := range paths {
		select {
		case s.deletions <- p:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// IngredientLabel renders "Egg — 2 pcs", "Egg — 2" or "Egg".
func IngredientLabel(name, quantity, unit string) string {
	switch {
	case quantity != "" && unit != "":
		return name + " — " + quantity + " " + unit
	case quantity != "":
		return name + " — " + quantity
	default:
		return name
	}
}

func (s *FridgeService) updateFridges(ctx context.Context, userID string, update func([]string) []string) error {
	unlock := s.users.Lock(userID)
	defer unlock()

	ids, err := userFridgeIDs(ctx, s.store, userID)
	if err != nil {
		return err
	}

	return s.store.SetFields(ctx, storage.UserDoc(userID), map[string]any{
		fridgesField: update(ids),
	})
}

func userFridgeIDs(ctx context.Context, store Storage, userID string) ([]string, error) {
	doc, err := store.GetDocument(ctx, storage.UserDoc(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	ids := doc.Strings(fridgesField)
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// requireMember fails with ErrForbidden unless fridgeID is in the user's
// fridge list.
func requireMember(ctx context.Context, store Storage, userID, fridgeID string) error {
	ids, err := userFridgeIDs(ctx, store, userID)
	if err != nil {
		return err
	}
	if !slices.Contains(ids, fridgeID) {
		return fmt.Errorf("%w: %s", ErrForbidden, fridgeID)
	}
	return nil
}

func fridgeFromDocument(d storage.Document) models.Fridge {
	return models.Fridge{
		ID:          d.ID,
		OwnerID:     d.String("userID"),
		Title:       d.String("title"),
		Description: d.String("description"),
		CreatedAt:   createdAt(d),
	}
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}
