package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/fridgebook/internal/app/service"
)

type SystemHandler struct {
	system service.SystemServiceIface
	logger *zap.Logger
}

func NewSystem(s service.SystemServiceIface, l *zap.Logger) *SystemHandler {
	return &SystemHandler{
		system: s,
		logger: l,
	}
}

// Ping checks that the document store is reachable.
func (h *SystemHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := h.system.PingContext(ctx); err != nil {
		h.logger.Error("store ping failed", zap.Error(err))
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

func (h *SystemHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	stats, err := h.system.Stats(ctx)
	if err != nil {
		writeError(res, h.logger, err)
		return
	}

	writeJSON(res, http.StatusOK, stats)
}
