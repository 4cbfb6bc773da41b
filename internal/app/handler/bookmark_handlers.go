package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/models"
)

type BookmarkHandler struct {
	bookmarks service.BookmarkServiceIface
	logger    *zap.Logger
}

func NewBookmark(b service.BookmarkServiceIface, l *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarks: b,
		logger:    l,
	}
}

// keyFor builds the bookmark key for a recipe id and an optional fridge id.
func keyFor(fridgeID, recipeID string) (bookmark.Key, bool) {
	if !validID(recipeID) {
		return bookmark.Key{}, false
	}
	if fridgeID != "" && !validID(fridgeID) {
		return bookmark.Key{}, false
	}
	return bookmark.For(fridgeID, recipeID), true
}

// List returns the user's bookmarked recipes.
func (h *BookmarkHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	list, err := h.bookmarks.List(ctx, userID(req))
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, list)
}

// Status reports whether the recipe named by the fridgeId and id query
// parameters is bookmarked.
func (h *BookmarkHandler) Status(res http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	key, ok := keyFor(q.Get("fridgeId"), q.Get("id"))
	if !ok {
		http.Error(res, "invalid recipe id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	bookmarked, err := h.bookmarks.IsBookmarked(ctx, userID(req), key)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	encoded, _ := bookmark.Encode(key)
	writeJSON(res, http.StatusOK, models.BookmarkStatus{Key: encoded, Bookmarked: bookmarked})
}

// Toggle flips the bookmark of a recipe.
func (h *BookmarkHandler) Toggle(res http.ResponseWriter, req *http.Request) {
	var body models.ToggleBookmarkRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}

	key, ok := keyFor(body.FridgeID, body.RecipeID)
	if !ok {
		http.Error(res, "invalid recipe id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	bookmarked, err := h.bookmarks.Toggle(ctx, userID(req), key)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	encoded, _ := bookmark.Encode(key)
	writeJSON(res, http.StatusOK, models.BookmarkStatus{Key: encoded, Bookmarked: bookmarked})
}
