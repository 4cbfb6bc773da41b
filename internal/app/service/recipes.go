package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/mealdb"
	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/recipe"
	"github.com/atinyakov/fridgebook/internal/storage"
)

const (
	// DefaultRecipeLimit is how many fridge recipes are listed by default.
	DefaultRecipeLimit = 20

	defaultImportCount = 10
	maxImportCount     = 50
)

type RecipeService struct {
	store  Storage
	meals  MealDB
	logger *zap.Logger
	now    func() time.Time
}

func NewRecipeService(store Storage, meals MealDB, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		store:  store,
		meals:  meals,
		logger: logger,
		now:    time.Now,
	}
}

// Get loads the recipe addressed by key and normalizes it. Fridge scoped
// keys read from the fridge's own recipe collection.
func (s *RecipeService) Get(ctx context.Context, key bookmark.Key) (recipe.Normalized, error) {
	if _, ok := bookmark.Encode(key); !ok {
		return recipe.Normalized{}, ErrInvalidKey
	}

	path := storage.RecipeDoc(key.RecipeID)
	rctx := recipe.Context{ID: key.RecipeID}
	if key.Scoped() {
		path = storage.FridgeRecipeDoc(key.FridgeID, key.RecipeID)
		rctx.FridgeID = key.FridgeID
	}

	doc, err := s.store.GetDocument(ctx, path)
	if err != nil {
		return recipe.Normalized{}, err
	}

	return recipe.Normalize(recipe.Raw(doc.Fields), rctx), nil
}

// ListFridgeRecipes returns up to limit recipes of a fridge userID has
// joined, newest first.
func (s *RecipeService) ListFridgeRecipes(ctx context.Context, userID, fridgeID string, limit int) ([]recipe.Normalized, error) {
	if err := requireMember(ctx, s.store, userID, fridgeID); err != nil {
		return nil, err
	}
	return s.fridgeRecipes(ctx, fridgeID, limit)
}

func (s *RecipeService) fridgeRecipes(ctx context.Context, fridgeID string, limit int) ([]recipe.Normalized, error) {
	if limit <= 0 {
		limit = DefaultRecipeLimit
	}

	docs, err := s.store.ListDocuments(ctx, storage.FridgeRecipes(fridgeID))
	if err != nil {
		return nil, err
	}

	sortNewestFirst(docs)
	if len(docs) > limit {
		docs = docs[:limit]
	}

	out := make([]recipe.Normalized, 0, len(docs))
	for _, d := range docs {
		out = append(out, recipe.Normalize(recipe.Raw(d.Fields), recipe.Context{ID: d.ID, FridgeID: fridgeID}))
	}
	return out, nil
}

// ImportRandom fetches count random meals and stores them in the fridge in
// canonical form. It returns the new recipe ids.
func (s *RecipeService) ImportRandom(ctx context.Context, userID, fridgeID string, count int) ([]string, error) {
	switch {
	case count <= 0:
		count = defaultImportCount
	case count > maxImportCount:
		count = maxImportCount
	}

	if err := requireMember(ctx, s.store, userID, fridgeID); err != nil {
		return nil, err
	}
	if _, err := s.store.GetDocument(ctx, storage.FridgeDoc(fridgeID)); err != nil {
		return nil, err
	}

	meals, err := s.meals.RandomN(ctx, count)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(meals))
	for _, raw := range meals {
		id, err := s.store.AddDocument(ctx, storage.FridgeRecipes(fridgeID), s.importFields(raw))
		if err != nil {
			s.logger.Error("saving imported recipe failed", zap.String("fridge", fridgeID), zap.Error(err))
			return ids, err
		}
		ids = append(ids, id)
	}

	s.logger.Info("imported recipes", zap.String("fridge", fridgeID), zap.Int("count", len(ids)))
	return ids, nil
}

func (s *RecipeService) importFields(raw recipe.Raw) map[string]any {
	n := recipe.Normalize(raw, recipe.Context{})

	ingredients := make([]map[string]any, 0, len(n.Ingredients))
	for _, ing := range n.Ingredients {
		ingredients = append(ingredients, map[string]any{"name": ing.Name, "measure": ing.Measure})
	}

	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}

	idMeal, _ := raw["idMeal"].(string)

	return map[string]any{
		"idMeal":       idMeal,
		"name":         n.Name,
		"category":     n.Category,
		"area":         n.Area,
		"instructions": n.Instructions,
		"thumbnail":    n.Thumbnail,
		"tags":         tags,
		"youtube":      n.YouTubeURL,
		"ingredients":  ingredients,
		"source":       mealdb.Source,
		"createdAt":    s.now().UTC(),
	}
}

// IngredientOptions lists a meal's ingredients with parsed measures and the
// distinct units among them.
func (s *RecipeService) IngredientOptions(ctx context.Context, mealID string) (models.IngredientOptions, error) {
	raw, err := s.meals.LookupByID(ctx, mealID)
	if errors.Is(err, mealdb.ErrNotFound) {
		return models.IngredientOptions{}, fmt.Errorf("%w: meal %s", ErrNotFound, mealID)
	}
	if err != nil {
		return models.IngredientOptions{}, err
	}

	options, units := recipe.IngredientOptions(recipe.Ingredients(raw))
	return models.IngredientOptions{MealID: mealID, Options: options, Units: units}, nil
}

// Feed returns the first of the user's fridges that holds recipes.
func (s *RecipeService) Feed(ctx context.Context, userID string) (models.Feed, error) {
	fridgeIDs, err := userFridgeIDs(ctx, s.store, userID)
	if err != nil {
		return models.Feed{}, err
	}

	for _, fid := range fridgeIDs {
		recipes, err := s.fridgeRecipes(ctx, fid, DefaultRecipeLimit)
		if err != nil {
			return models.Feed{}, err
		}
		if len(recipes) == 0 {
			continue
		}

		doc, err := s.store.GetDocument(ctx, storage.FridgeDoc(fid))
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.Feed{}, err
		}

		f := fridgeFromDocument(doc)
		return models.Feed{Fridge: &f, Recipes: recipes}, nil
	}

	return models.Feed{Recipes: []recipe.Normalized{}}, nil
}

// BuildRecipeView assembles the recipe page for r.
func BuildRecipeView(r recipe.Normalized, key bookmark.Key, bookmarked bool) models.RecipeView {
	encoded, _ := bookmark.Encode(key)
	view := models.RecipeView{
		Recipe:      r,
		Steps:       recipe.Steps(r.Instructions),
		BookmarkKey: encoded,
		Bookmarked:  bookmarked,
	}
	if u, ok := recipe.YouTubeEmbedURL(r.YouTubeURL); ok {
		view.EmbedURL = u
	}
	return view
}

// createdAt reads the createdAt field, which is a time.Time from Firestore
// and an RFC 3339 string from the JSON backends. The store's own creation
// time is the fallback.
func createdAt(d storage.Document) time.Time {
	if t, ok := timeField(d, "createdAt"); ok {
		return t
	}
	return d.CreatedAt
}

// timeField reads a timestamp stored either as a time or as RFC 3339 text,
// the form it takes after a JSON round trip.
func timeField(d storage.Document, name string) (time.Time, bool) {
	switch v := d.Field(name).(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortNewestFirst(docs []storage.Document) {
	slices.SortStableFunc(docs, func(a, b storage.Document) int {
		if c := createdAt(b).Compare(createdAt(a)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
