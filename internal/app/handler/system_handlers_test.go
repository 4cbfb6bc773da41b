package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/mocks"
	"github.com/atinyakov/fridgebook/internal/models"
)

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	system := mocks.NewMockSystemServiceIface(ctrl)
	h := NewSystem(system, zap.NewNop())

	system.EXPECT().PingContext(gomock.Any()).Return(nil)
	system.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

	w := httptest.NewRecorder()
	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	system := mocks.NewMockSystemServiceIface(ctrl)
	h := NewSystem(system, zap.NewNop())

	system.EXPECT().Stats(gomock.Any()).Return(models.Stats{Users: 3, Fridges: 2, Recipes: 10}, nil)

	w := httptest.NewRecorder()
	h.Stats(w, httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":3,"fridges":2,"recipes":10}`, w.Body.String())
}
