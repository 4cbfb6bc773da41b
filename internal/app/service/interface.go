package service

import (
	"context"
	"net/http"

	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/recipe"
	"github.com/atinyakov/fridgebook/internal/storage"
)

//go:generate mockgen -destination=../../mocks/service_mocks.go -package=mocks github.com/atinyakov/fridgebook/internal/app/service AuthIface,BookmarkServiceIface,FridgeServiceIface,MealDB,ProfileServiceIface,RecipeServiceIface,Storage,SystemServiceIface,TokenVerifier

// Storage is the document store the services run on.
type Storage interface {
	storage.Store
}

// MealDB looks up recipes in TheMealDB.
type MealDB interface {
	LookupByID(ctx context.Context, id string) (recipe.Raw, error)
	RandomN(ctx context.Context, n int) ([]recipe.Raw, error)
}

type BookmarkServiceIface interface {
	Load(ctx context.Context, userID string) (bookmark.Set, error)
	IsBookmarked(ctx context.Context, userID string, key bookmark.Key) (bool, error)
	Toggle(ctx context.Context, userID string, key bookmark.Key) (bool, error)
	List(ctx context.Context, userID string) ([]recipe.Normalized, error)
}

type RecipeServiceIface interface {
	Get(ctx context.Context, key bookmark.Key) (recipe.Normalized, error)
	ListFridgeRecipes(ctx context.Context, userID, fridgeID string, limit int) ([]recipe.Normalized, error)
	ImportRandom(ctx context.Context, userID, fridgeID string, count int) ([]string, error)
	IngredientOptions(ctx context.Context, mealID string) (models.IngredientOptions, error)
	Feed(ctx context.Context, userID string) (models.Feed, error)
}

type FridgeServiceIface interface {
	Create(ctx context.Context, userID, title, description string) (models.Fridge, error)
	Join(ctx context.Context, userID, fridgeID string) error
	Leave(ctx context.Context, userID, fridgeID string) error
	List(ctx context.Context, userID string) ([]models.Fridge, error)
	AddIngredient(ctx context.Context, userID, fridgeID string, req models.AddIngredientRequest) (models.FridgeIngredient, error)
	ListIngredients(ctx context.Context, userID, fridgeID string) ([]models.FridgeIngredient, error)
	RemoveIngredients(ctx context.Context, userID, fridgeID string, ids []string) error
}

type ProfileServiceIface interface {
	Get(ctx context.Context, userID string) (models.Profile, error)
	Save(ctx context.Context, userID string, p models.Profile) (models.Profile, error)
}

type SystemServiceIface interface {
	PingContext(ctx context.Context) error
	Stats(ctx context.Context) (models.Stats, error)
}

// AuthIface defines the interface for JWT authentication used in middleware.
type AuthIface interface {
	BuildJWTString(ctx context.Context) (string, string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}

// TokenVerifier verifies third party ID tokens and returns the user id.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (string, error)
}
