package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tiendaml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func recRequestFromQuery(r *http.Request, userID int) service.RecRequest {
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	return service.RecRequest{
		UserID:   userID,
		Strategy: r.URL.Query().Get("strategy"),
		Limit:    k,
		Explain:  r.URL.Query().Get("explain") != "false", // explicaciones activas por default
		Refresh:  r.URL.Query().Get("refresh") == "true",
	}
}

// @Summary Recomendaciones para un usuario (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param strategy query string false "auto|hybrid|collaborative|content (default: auto)"
// @Param k query int false "cantidad de recomendaciones (1-20, default: 5)"
// @Param explain query bool false "si false, omite explicaciones (default: true)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} service.RecResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	resp, err := h.svc.Recommend(r.Context(), recRequestFromQuery(r, userID))
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Mis recomendaciones
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param strategy query string false "auto|hybrid|collaborative|content (default: auto)"
// @Param k query int false "cantidad de recomendaciones (1-20, default: 5)"
// @Param explain query bool false "si false, omite explicaciones (default: true)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} service.RecResponse
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.Recommend(r.Context(), recRequestFromQuery(r, UserIDFromContext(r.Context())))
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param strategy query string false "auto|hybrid|collaborative|content"
// @Param k query int false "cantidad de recomendaciones (1-20, default: 5)"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	req := recRequestFromQuery(r, userID)
	req.Refresh = true // por WS siempre se recalcula

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	// Mensajes de progreso por fase del pipeline
	phases := []string{
		"Cargando catálogo e interacciones",
		"Filtro colaborativo",
		"Filtro por contenido",
		"Generando explicaciones",
	}
	for i, phase := range phases {
		time.Sleep(200 * time.Millisecond)
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"phase": i + 1,
			"msg":   phase,
		})
	}

	resp, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":         "recommendations",
		"userId":       resp.UserID,
		"strategyUsed": resp.StrategyUsed,
		"items":        resp.Items,
		"generatedAt":  time.Now(),
	})
}

// @Summary Productos similares
// @Tags recommend
// @Produce json
// @Param id path int true "productId"
// @Param k query int false "cantidad (1-20, default: 5)"
// @Param explain query bool false "incluir explicaciones (default: false)"
// @Success 200 {object} service.SimilarResponse
// @Failure 404 {object} map[string]string
// @Router /products/{id}/similar [get]
func (h *RecommendHandler) GetSimilarProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	productID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	resp, err := h.svc.SimilarProducts(r.Context(), service.SimilarRequest{
		ProductID: productID,
		Limit:     k,
		Explain:   r.URL.Query().Get("explain") == "true",
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Historial de recomendaciones de un usuario (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default: 10)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	hist, err := h.svc.History(r.Context(), userID, int64(limit))
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}

// @Summary Probar la conexión con Gemini (ADMIN)
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]any
// @Router /admin/gemini/test [get]
func (h *RecommendHandler) TestGemini(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.svc.TestGemini(r.Context()); err != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
