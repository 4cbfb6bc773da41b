// Package models defines the request and response data structures shared by
// the HTTP and gRPC transports.
package models

import (
	"time"

	"github.com/atinyakov/fridgebook/internal/recipe"
)

// RecipeView is everything the recipe page renders.
type RecipeView struct {
	Recipe recipe.Normalized `json:"recipe"`

	// Steps are derived from the instructions on every request.
	Steps []recipe.Step `json:"steps"`

	// EmbedURL is set only when a video id could be extracted.
	EmbedURL string `json:"embedUrl,omitempty"`

	// BookmarkKey is the serialized bookmark key of this recipe.
	BookmarkKey string `json:"bookmarkKey"`
	Bookmarked  bool   `json:"bookmarked"`
}

// ToggleBookmarkRequest identifies a recipe, optionally in fridge scope.
type ToggleBookmarkRequest struct {
	FridgeID string `json:"fridgeId,omitempty"`
	RecipeID string `json:"id"`
}

// BookmarkStatus reports whether a recipe is bookmarked.
type BookmarkStatus struct {
	Key        string `json:"key"`
	Bookmarked bool   `json:"bookmarked"`
}

// Fridge is a shared fridge.
type Fridge struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateFridgeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type JoinFridgeRequest struct {
	FridgeID string `json:"fridgeId"`
}

type AddIngredientRequest struct {
	Ingredient string `json:"ingredient"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

// FridgeIngredient is an ingredient stocked in a fridge.
type FridgeIngredient struct {
	ID         string    `json:"id"`
	Ingredient string    `json:"ingredient"`
	Quantity   string    `json:"quantity"`
	Unit       string    `json:"unit"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DeleteIngredientsRequest lists ingredient ids to remove from a fridge.
type DeleteIngredientsRequest struct {
	IDs []string `json:"ids"`
}

type ImportRecipesRequest struct {
	Count int `json:"count"`
}

type ImportRecipesResponse struct {
	IDs []string `json:"ids"`
}

// IngredientOptions is offered when stocking a fridge from a meal.
type IngredientOptions struct {
	MealID  string                    `json:"mealId"`
	Options []recipe.IngredientOption `json:"options"`
	Units   []string                  `json:"units"`
}

// Feed is the home page: the first of the user's fridges holding recipes.
type Feed struct {
	Fridge  *Fridge             `json:"fridge,omitempty"`
	Recipes []recipe.Normalized `json:"recipes"`
}

// Stats is served to trusted clients only.
type Stats struct {
	Users   int `json:"users"`
	Fridges int `json:"fridges"`
	Recipes int `json:"recipes"`
}

// Profile holds the personal details a user edits on the profile page.
type Profile struct {
	Name      string    `json:"name"`
	School    string    `json:"school"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	UpdatedAt time.Time `json:"updatedAt"`
}
