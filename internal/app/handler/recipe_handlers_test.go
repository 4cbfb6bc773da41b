package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/middleware"
	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/models"
	"github.com/atinyakov/fridgebook/internal/recipe"
)

// withParams attaches chi URL params and the user id to req.
func withParams(req *http.Request, user string, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != "" {
		ctx = context.WithValue(ctx, middleware.UserIDKey, user)
	}
	return req.WithContext(ctx)
}

func newRecipeHandler(t *testing.T) (*RecipeHandler, *mocks.MockRecipeServiceIface, *mocks.MockBookmarkServiceIface) {
	ctrl := gomock.NewController(t)
	recipes := mocks.NewMockRecipeServiceIface(ctrl)
	bookmarks := mocks.NewMockBookmarkServiceIface(ctrl)
	return NewRecipe(recipes, bookmarks, zap.NewNop()), recipes, bookmarks
}

func TestRecipe(t *testing.T) {
	h, recipes, bookmarks := newRecipeHandler(t)

	r := recipe.Normalized{
		ID:           "52772",
		Name:         "Teriyaki Chicken",
		Instructions: "Preheat oven.\nBake.",
		YouTubeURL:   "https://www.youtube.com/watch?v=4aZr5hZXP_s",
		Ingredients:  []recipe.Ingredient{},
	}
	key := bookmark.Recipe("52772")

	recipes.EXPECT().Get(gomock.Any(), key).Return(r, nil)
	bookmarks.EXPECT().IsBookmarked(gomock.Any(), "u1", key).Return(true, nil)

	req := withParams(httptest.NewRequest(http.MethodGet, "/api/recipes/52772", nil), "u1", "recipeID", "52772")
	w := httptest.NewRecorder()
	h.Recipe(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var view models.RecipeView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Teriyaki Chicken", view.Recipe.Name)
	assert.Equal(t, "recipe:52772", view.BookmarkKey)
	assert.True(t, view.Bookmarked)
	assert.Equal(t, "https://www.youtube.com/embed/4aZr5hZXP_s", view.EmbedURL)
	require.Len(t, view.Steps, 2)
	assert.Equal(t, "Bake.", view.Steps[1].Text)
}

func TestFridgeRecipe_BookmarkStateFailureStillRenders(t *testing.T) {
	h, recipes, bookmarks := newRecipeHandler(t)

	key := bookmark.FridgeRecipe("f1", "r1")
	recipes.EXPECT().Get(gomock.Any(), key).Return(recipe.Normalized{ID: "r1", FridgeID: "f1", Name: "Soup"}, nil)
	bookmarks.EXPECT().IsBookmarked(gomock.Any(), "u1", key).Return(false, errors.New("unavailable"))

	req := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1", "fridgeID", "f1", "recipeID", "r1")
	w := httptest.NewRecorder()
	h.FridgeRecipe(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var view models.RecipeView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "fridge:f1:r1", view.BookmarkKey)
	assert.False(t, view.Bookmarked)
	assert.Empty(t, view.EmbedURL)
}

func TestRecipe_Errors(t *testing.T) {
	tests := []struct {
		name     string
		recipeID string
		err      error
		code     int
		body     string
	}{
		{name: "not found", recipeID: "1", err: service.ErrNotFound, code: http.StatusNotFound, body: msgNotFound},
		{name: "store failure", recipeID: "1", err: errors.New("deadline exceeded"), code: http.StatusInternalServerError, body: msgLoadFailed},
		{name: "reserved id", recipeID: "recipe", code: http.StatusBadRequest},
		{name: "id with separator", recipeID: "a:b", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, recipes, _ := newRecipeHandler(t)
			if tt.err != nil {
				recipes.EXPECT().Get(gomock.Any(), bookmark.Recipe(tt.recipeID)).Return(recipe.Normalized{}, tt.err)
			}

			req := withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1", "recipeID", tt.recipeID)
			w := httptest.NewRecorder()
			h.Recipe(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}

func TestFridgeRecipes(t *testing.T) {
	h, recipes, _ := newRecipeHandler(t)

	recipes.EXPECT().ListFridgeRecipes(gomock.Any(), "u1", "f1", service.DefaultRecipeLimit).
		Return([]recipe.Normalized{{ID: "a"}, {ID: "b"}}, nil)
	recipes.EXPECT().ListFridgeRecipes(gomock.Any(), "u1", "f1", 5).Return([]recipe.Normalized{}, nil)

	w := httptest.NewRecorder()
	h.FridgeRecipes(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1", "fridgeID", "f1"))
	require.Equal(t, http.StatusOK, w.Code)

	var list []recipe.Normalized
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	w = httptest.NewRecorder()
	h.FridgeRecipes(w, withParams(httptest.NewRequest(http.MethodGet, "/?limit=5", nil), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.FridgeRecipes(w, withParams(httptest.NewRequest(http.MethodGet, "/?limit=-1", nil), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImport(t *testing.T) {
	h, recipes, _ := newRecipeHandler(t)

	recipes.EXPECT().ImportRandom(gomock.Any(), "u1", "f1", 0).Return([]string{"x"}, nil)
	recipes.EXPECT().ImportRandom(gomock.Any(), "u1", "f1", 3).Return([]string{"a", "b", "c"}, nil)
	recipes.EXPECT().ImportRandom(gomock.Any(), "u1", "missing", 0).Return(nil, service.ErrNotFound)

	w := httptest.NewRecorder()
	h.Import(w, withParams(httptest.NewRequest(http.MethodPost, "/", nil), "u1", "fridgeID", "f1"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ids":["x"]}`, w.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":3}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.Import(w, withParams(req, "u1", "fridgeID", "f1"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ids":["a","b","c"]}`, w.Body.String())

	w = httptest.NewRecorder()
	h.Import(w, withParams(httptest.NewRequest(http.MethodPost, "/", nil), "u1", "fridgeID", "missing"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":"three"}`))
	w = httptest.NewRecorder()
	h.Import(w, withParams(req, "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngredientOptions(t *testing.T) {
	h, recipes, _ := newRecipeHandler(t)

	opts := models.IngredientOptions{
		MealID:  "52772",
		Options: []recipe.IngredientOption{{Ingredient: "soy sauce", Measure: "3/4 cup", Quantity: "3/4", Unit: "cup"}},
		Units:   []string{"cup"},
	}
	recipes.EXPECT().IngredientOptions(gomock.Any(), "52772").Return(opts, nil)

	w := httptest.NewRecorder()
	h.IngredientOptions(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1", "mealID", "52772"))
	require.Equal(t, http.StatusOK, w.Code)

	var got models.IngredientOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, opts.Units, got.Units)
	assert.Equal(t, "3/4", got.Options[0].Quantity)
}

func TestFeed(t *testing.T) {
	h, recipes, _ := newRecipeHandler(t)

	recipes.EXPECT().Feed(gomock.Any(), "u1").Return(models.Feed{
		Fridge:  &models.Fridge{ID: "f1", Title: "Home"},
		Recipes: []recipe.Normalized{{ID: "r1"}},
	}, nil)

	w := httptest.NewRecorder()
	h.Feed(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1"))
	require.Equal(t, http.StatusOK, w.Code)

	var feed models.Feed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.NotNil(t, feed.Fridge)
	assert.Equal(t, "Home", feed.Fridge.Title)
}
