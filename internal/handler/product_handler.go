package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(s *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: s}
}

// @Summary Obtener producto por id
// @Tags products
// @Produce json
// @Param id path int true "productId"
// @Success 200 {object} models.ProductDoc
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	p, err := h.svc.GetProduct(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Buscar productos
// @Tags products
// @Produce json
// @Param q query string false "texto en name/description"
// @Param category query string false "categoría exacta"
// @Param brand query string false "marca exacta"
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} models.ProductDoc
// @Router /products/search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	brand := r.URL.Query().Get("brand")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	products, err := h.svc.Search(r.Context(), q, category, brand, limit, offset)
	if err != nil {
		writeErr(w, err)
		return
	}
	if products == nil {
		products = []models.ProductDoc{}
	}
	_ = json.NewEncoder(w).Encode(products)
}

// @Summary Crear producto (ADMIN)
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.ProductCreateRequest true "datos del producto"
// @Success 201 {object} models.ProductDoc
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreateProduct(r.Context(), req)
	if err != nil {
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// @Summary Actualizar producto (ADMIN)
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "productId"
// @Param body body models.ProductUpdateRequest true "campos a actualizar"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req models.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateProduct(r.Context(), id, req); err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"updated": true})
}
