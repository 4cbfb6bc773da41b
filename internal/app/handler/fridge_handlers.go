package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/models"
)

// FridgeHandler manages fridges, their members and their ingredients.
type FridgeHandler struct {
	fridges service.FridgeServiceIface
	logger  *zap.Logger
}

func NewFridge(f service.FridgeServiceIface, l *zap.Logger) *FridgeHandler {
	return &FridgeHandler{
		fridges: f,
		logger:  l,
	}
}

func (h *FridgeHandler) Create(res http.ResponseWriter, req *http.Request) {
	var body models.CreateFridgeRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	f, err := h.fridges.Create(ctx, userID(req), body.Title, body.Description)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusCreated, f)
}

// List returns the fridges the current user belongs to.
func (h *FridgeHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	list, err := h.fridges.List(ctx, userID(req))
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	if len(list) == 0 {
		res.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(res, http.StatusOK, list)
}

func (h *FridgeHandler) Join(res http.ResponseWriter, req *http.Request) {
	var body models.JoinFridgeRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}
	if !validID(body.FridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.fridges.Join(ctx, userID(req), body.FridgeID); err != nil {
		writeError(res, h.logger, err)
		return
	}

	res.WriteHeader(http.StatusOK)
}

func (h *FridgeHandler) Leave(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.fridges.Leave(ctx, userID(req), fridgeID); err != nil {
		writeError(res, h.logger, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (h *FridgeHandler) AddIngredient(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	var body models.AddIngredientRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	ing, err := h.fridges.AddIngredient(ctx, userID(req), fridgeID, body)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusCreated, ing)
}

func (h *FridgeHandler) Ingredients(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	list, err := h.fridges.ListIngredients(ctx, userID(req), fridgeID)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, list)
}

// DeleteIngredients queues ingredient ids for removal and answers 202
// before anything is deleted.
func (h *FridgeHandler) DeleteIngredients(res http.ResponseWriter, req *http.Request) {
	fridgeID := chi.URLParam(req, "fridgeID")
	if !validID(fridgeID) {
		http.Error(res, "invalid fridge id", http.StatusBadRequest)
		return
	}

	var body models.DeleteIngredientsRequest
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.fridges.RemoveIngredients(ctx, userID(req), fridgeID, body.IDs); err != nil {
		writeError(res, h.logger, err)
		return
	}

	res.WriteHeader(http.StatusAccepted)
}
