package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
	"github.com/atinyakov/fridgebook/internal/models"
)

type ProfileHandler struct {
	profiles service.ProfileServiceIface
	logger   *zap.Logger
}

func NewProfile(p service.ProfileServiceIface, l *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: p,
		logger:   l,
	}
}

func (h *ProfileHandler) Get(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	p, err := h.profiles.Get(ctx, userID(req))
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, p)
}

// Save replaces the editable profile fields and answers with what was stored.
func (h *ProfileHandler) Save(res http.ResponseWriter, req *http.Request) {
	var body models.Profile
	if err := decodeJSONBody(res, req, &body); err != nil {
		writeError(res, h.logger, err)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	p, err := h.profiles.Save(ctx, userID(req), body)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, p)
}
