package handler

import (
	"net/http"
	"time"

	httputil "innkeep/pkg/http"
	"innkeep/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type HealthHandler struct {
	log     *logger.Logger
	started time.Time
}

func NewHealthHandler(log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		log:     log,
		started: time.Now(),
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Health)
}

// Health always reports healthy: the store is in-process memory, so
// there is no dependency whose failure could be detected here.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}
