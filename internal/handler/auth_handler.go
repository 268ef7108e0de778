package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`

	FullName string `json:"fullName,omitempty"`
	Age      *int   `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Location string `json:"location,omitempty"`

	PreferredCategories []string `json:"preferredCategories,omitempty"`
	PreferredBrands     []string `json:"preferredBrands,omitempty"`
	PriceRangeMin       *float64 `json:"priceRangeMin,omitempty"`
	PriceRangeMax       *float64 `json:"priceRangeMax,omitempty"`

	TotalPurchases int     `json:"totalPurchases"`
	TotalSpent     float64 `json:"totalSpent"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:              u.UserID,
		Username:            u.Username,
		Email:               u.Email,
		Role:                u.Role,
		FullName:            u.FullName,
		Age:                 u.Age,
		Gender:              u.Gender,
		Location:            u.Location,
		PreferredCategories: u.PreferredCategories,
		PreferredBrands:     u.PreferredBrands,
		PriceRangeMin:       u.PriceRangeMin,
		PriceRangeMax:       u.PriceRangeMax,
		TotalPurchases:      u.TotalPurchases,
		TotalSpent:          u.TotalSpent,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	FullName string `json:"fullName"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location"`

	PreferredCategories []string `json:"preferredCategories"`
	PreferredBrands     []string `json:"preferredBrands"`
	PriceRangeMin       *float64 `json:"priceRangeMin"`
	PriceRangeMax       *float64 `json:"priceRangeMax"`
}

// @Summary Register
// @Description Crea un usuario nuevo
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Username:            req.Username,
		Email:               req.Email,
		Password:            req.Password,
		Role:                req.Role,
		FullName:            req.FullName,
		Age:                 req.Age,
		Gender:              req.Gender,
		Location:            req.Location,
		PreferredCategories: req.PreferredCategories,
		PreferredBrands:     req.PreferredBrands,
		PriceRangeMin:       req.PriceRangeMin,
		PriceRangeMax:       req.PriceRangeMax,
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`

	FullName *string `json:"fullName"`
	Location *string `json:"location"`

	PreferredCategories *[]string `json:"preferredCategories"`
	PreferredBrands     *[]string `json:"preferredBrands"`
	PriceRangeMin       *float64  `json:"priceRangeMin"`
	PriceRangeMax       *float64  `json:"priceRangeMax"`
}

// @Summary Actualizar usuario
// @Description Actualiza los datos de un usuario existente. Todos los campos son opcionales.
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "userId"
// @Param body body updateUserRequest true "datos a actualizar"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/update [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.svc.UpdateUser(r.Context(), id, service.UpdateUserData{
		Email:               req.Email,
		Role:                req.Role,
		Password:            req.Password,
		FullName:            req.FullName,
		Location:            req.Location,
		PreferredCategories: req.PreferredCategories,
		PreferredBrands:     req.PreferredBrands,
		PriceRangeMin:       req.PriceRangeMin,
		PriceRangeMax:       req.PriceRangeMax,
	})
	if err != nil {
		writeErr(w, err)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"updated": true})
}

// @Summary Listar usuarios (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Param offset query int false "offset (default: 0)"
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	users, err := h.svc.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		uCopy := u
		resp = append(resp, toUserResponse(&uCopy))
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Obtener usuario por id (ADMIN)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} userResponse
// @Router /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	u, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

// @Summary Perfil del usuario autenticado
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, err := h.svc.GetUserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}
