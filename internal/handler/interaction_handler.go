package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
)

type InteractionHandler struct {
	svc *service.InteractionService
}

func NewInteractionHandler(s *service.InteractionService) *InteractionHandler {
	return &InteractionHandler{svc: s}
}

type interactionRequest struct {
	ProductID  int      `json:"productId"`
	Type       string   `json:"type"` // view|purchase|rating|review|cart_add|...
	Rating     *float64 `json:"rating,omitempty"`
	ReviewText string   `json:"reviewText,omitempty"`
	Quantity   int      `json:"quantity,omitempty"`
}

// @Summary Registrar una interacción propia
// @Description Registra una interacción (view, purchase, rating, etc.) del usuario autenticado.
// @Tags interactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body interactionRequest true "interacción"
// @Success 201 {object} models.InteractionDoc
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /me/interactions [post]
func (h *InteractionHandler) PostMyInteraction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.svc.Record(r.Context(), UserIDFromContext(r.Context()), service.RecordInteractionData{
		ProductID:  req.ProductID,
		Type:       req.Type,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(it)
}

// @Summary Mis interacciones
// @Tags interactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.InteractionDoc
// @Router /me/interactions [get]
func (h *InteractionHandler) GetMyInteractions(w http.ResponseWriter, r *http.Request) {
	h.listFor(w, r, UserIDFromContext(r.Context()))
}

// @Summary Interacciones de un usuario (ADMIN)
// @Tags interactions
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.InteractionDoc
// @Router /users/{id}/interactions [get]
func (h *InteractionHandler) GetInteractions(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.listFor(w, r, userID)
}

// @Summary Registrar interacción para un usuario (ADMIN)
// @Tags interactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "userId"
// @Param body body interactionRequest true "interacción"
// @Success 201 {object} models.InteractionDoc
// @Router /users/{id}/interactions [post]
func (h *InteractionHandler) PostInteraction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.svc.Record(r.Context(), userID, service.RecordInteractionData{
		ProductID:  req.ProductID,
		Type:       req.Type,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		Quantity:   req.Quantity,
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(it)
}

func (h *InteractionHandler) listFor(w http.ResponseWriter, r *http.Request, userID int) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 50
	}

	items, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		writeErr(w, err)
		return
	}
	if items == nil {
		items = []models.InteractionDoc{}
	}
	_ = json.NewEncoder(w).Encode(items)
}
