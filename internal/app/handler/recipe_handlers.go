package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/models"
)

// RecipeHandler serves recipe pages, fridge recipe lists and imports.
type RecipeHandler struct {
	recipes   service.RecipeServiceIface
	bookmarks service.BookmarkServiceIface
	logger    *zap.Logger
}

func NewRecipe(r service.RecipeServiceIface, b service.BookmarkServiceIface, l *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:   r,
		bookmarks: b,
		logger:    l,
	}
}

// Recipe renders a recipe from the global collection.
func (h *RecipeHandler) Recipe(res http.ResponseWriter, req *http.Request) {
	recipeID := chi.URLParam(req, "recipeID")
	if !validID(recipeID) {
		http.Error(res, "invalid recipe id", http.StatusBadRequest)
		return
	}

	h.view(res, req, bookmark.Recipe(recipeID))
}

// FridgeRecipe renders a recipe stored under a fridge.
func (h *RecipeHandler) FridgeRecipe(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	recipeID := chi.URLParam(req, "recipeID")
	if !validID(fridgeID) || !validID(recipeID) {
		http.Error(res, "invalid recipe id", http.StatusBadRequest)
		return
	}

	h.view(res, req, bookmark.FridgeRecipe(fridgeID, recipeID))
}

func (h *RecipeHandler) view(res http.ResponseWriter, req *http.Request, key bookmark.Key) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	r, err := h.recipes.Get(ctx, key)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	bookmarked := false
	if uid := userID(req); uid != "" {
		bookmarked, err = h.bookmarks.IsBookmarked(ctx, uid, key)
		if err != nil {
			// the page is still useful without the bookmark state
			h.logger.Warn("cannot load bookmark state", zap.String("user", uid), zap.Error(err))
			bookmarked = false
		}
	}

	writeJSON(res, http.StatusOK, service.BuildRecipeView(r, key, bookmarked))
}

// FridgeRecipes lists a fridge's recipes, newest first. The optional limit
// query parameter caps the result.
func (h *RecipeHandler) FridgeRecipes(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	limit := service.DefaultRecipeLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(res, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	list, err := h.recipes.ListFridgeRecipes(ctx, userID(req), fridgeID, limit)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, list)
}

// Import stores random TheMealDB recipes in a fridge. An empty body imports
// the default number of recipes.
func (h *RecipeHandler) Import(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	var body models.ImportRecipesRequest
	if req.ContentLength != 0 {
		if err := decodeJSONBody(res, req, &body); err != nil {
			writeError(res, h.logger, err)
			return
		}
	}

	// TheMealDB is slow, imports get a longer deadline than regular requests
	ctx, cancel := context.WithTimeout(req.Context(), 4*requestTimeout)
	defer cancel()

	ids, err := h.recipes.ImportRandom(ctx, userID(req), fridgeID, body.Count)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusCreated, models.ImportRecipesResponse{IDs: ids})
}

// IngredientOptions lists the ingredients of a TheMealDB meal ready to be
// stocked in a fridge.
func (h *RecipeHandler) IngredientOptions(res http.ResponseWriter, req *http.Request) {
	mealID := chi.URLParam(req, "mealID")
	if !validID(mealID) {
		http.Error(res, "invalid meal id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	opts, err := h.recipes.IngredientOptions(ctx, mealID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, opts)
}

// Feed serves the home page of the current user.
func (h *RecipeHandler) Feed(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	feed, err := h.recipes.Feed(ctx, userID(req))
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, feed)
}
