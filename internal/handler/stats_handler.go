package handler

import (
	"encoding/json"
	"net/http"

	"tiendaml-pc5/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: s}
}

// @Summary Estadísticas globales de la tienda (ADMIN)
// @Tags stats
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.Stats
// @Router /admin/stats [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := h.svc.Overview(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
