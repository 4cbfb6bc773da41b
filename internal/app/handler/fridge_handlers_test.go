package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/models"
)

func newFridgeHandler(t *testing.T) (*FridgeHandler, *mocks.MockFridgeServiceIface) {
	ctrl := gomock.NewController(t)
	fridges := mocks.NewMockFridgeServiceIface(ctrl)
	return NewFridge(fridges, zap.NewNop()), fridges
}

func TestCreateFridge(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	fridges.EXPECT().Create(gomock.Any(), "u1", "Home", "Kitchen").
		Return(models.Fridge{ID: "f1", OwnerID: "u1", Title: "Home", Description: "Kitchen"}, nil)
	fridges.EXPECT().Create(gomock.Any(), "u1", "", "").Return(models.Fridge{}, service.ErrInvalidInput)

	w := httptest.NewRecorder()
	h.Create(w, withParams(jsonRequest(http.MethodPost, `{"title":"Home","description":"Kitchen"}`), "u1"))
	require.Equal(t, http.StatusCreated, w.Code)

	var f models.Fridge
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, "u1", f.OwnerID)

	w = httptest.NewRecorder()
	h.Create(w, withParams(jsonRequest(http.MethodPost, `{}`), "u1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFridges(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	fridges.EXPECT().List(gomock.Any(), "u1").Return([]models.Fridge{{ID: "f1"}}, nil)
	fridges.EXPECT().List(gomock.Any(), "u2").Return([]models.Fridge{}, nil)

	w := httptest.NewRecorder()
	h.List(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.List(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u2"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestJoinLeave(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	fridges.EXPECT().Join(gomock.Any(), "u1", "f1").Return(nil)
	fridges.EXPECT().Join(gomock.Any(), "u1", "gone").Return(service.ErrNotFound)
	fridges.EXPECT().Leave(gomock.Any(), "u1", "f1").Return(nil)

	w := httptest.NewRecorder()
	h.Join(w, withParams(jsonRequest(http.MethodPost, `{"fridgeId":"f1"}`), "u1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Join(w, withParams(jsonRequest(http.MethodPost, `{"fridgeId":"gone"}`), "u1"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.Join(w, withParams(jsonRequest(http.MethodPost, `{"fridgeId":"../users"}`), "u1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.Leave(w, withParams(httptest.NewRequest(http.MethodDelete, "/", nil), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestIngredients(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	req := models.AddIngredientRequest{Ingredient: "Egg", Quantity: "2", Unit: "pcs"}
	fridges.EXPECT().AddIngredient(gomock.Any(), "u1", "f1", req).
		Return(models.FridgeIngredient{ID: "i1", Ingredient: "Egg", Quantity: "2", Unit: "pcs", Label: "Egg — 2 pcs"}, nil)
	fridges.EXPECT().ListIngredients(gomock.Any(), "u1", "f1").
		Return([]models.FridgeIngredient{{ID: "i1", Label: "Egg — 2 pcs"}}, nil)

	w := httptest.NewRecorder()
	h.AddIngredient(w, withParams(jsonRequest(http.MethodPost, `{"ingredient":"Egg","quantity":"2","unit":"pcs"}`), "u1", "fridgeID", "f1"))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"Egg — 2 pcs"`)

	w = httptest.NewRecorder()
	h.Ingredients(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "u1", "fridgeID", "f1"))
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.FridgeIngredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "i1", list[0].ID)
}

func TestIngredients_NotAMember(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	fridges.EXPECT().ListIngredients(gomock.Any(), "stranger", "f1").Return(nil, service.ErrForbidden)
	fridges.EXPECT().AddIngredient(gomock.Any(), "stranger", "f1", gomock.Any()).
		Return(models.FridgeIngredient{}, service.ErrForbidden)

	w := httptest.NewRecorder()
	h.Ingredients(w, withParams(httptest.NewRequest(http.MethodGet, "/", nil), "stranger", "fridgeID", "f1"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	h.AddIngredient(w, withParams(jsonRequest(http.MethodPost, `{"ingredient":"Rat","quantity":"1"}`), "stranger", "fridgeID", "f1"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteIngredients(t *testing.T) {
	h, fridges := newFridgeHandler(t)

	fridges.EXPECT().RemoveIngredients(gomock.Any(), "u1", "f1", []string{"a", "b"}).Return(nil)
	fridges.EXPECT().RemoveIngredients(gomock.Any(), "u1", "f1", []string{"a/b"}).Return(service.ErrInvalidInput)

	w := httptest.NewRecorder()
	h.DeleteIngredients(w, withParams(jsonRequest(http.MethodDelete, `{"ids":["a","b"]}`), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = httptest.NewRecorder()
	h.DeleteIngredients(w, withParams(jsonRequest(http.MethodDelete, `{"ids":["a/b"]}`), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.DeleteIngredients(w, withParams(jsonRequest(http.MethodDelete, `["a"]`), "u1", "fridgeID", "f1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
