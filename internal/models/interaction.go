package models

// Tipos de interacción soportados.
const (
	InteractionView           = "view"
	InteractionPurchase       = "purchase"
	InteractionCartAdd        = "cart_add"
	InteractionCartRemove     = "cart_remove"
	InteractionWishlistAdd    = "wishlist_add"
	InteractionWishlistRemove = "wishlist_remove"
	InteractionRating         = "rating"
	InteractionReview         = "review"
	InteractionSearch         = "search"
	InteractionClick          = "click"
)

// InteractionTypes lista todos los tipos soportados (para stats y seeds).
var InteractionTypes = []string{
	InteractionView,
	InteractionPurchase,
	InteractionCartAdd,
	InteractionCartRemove,
	InteractionWishlistAdd,
	InteractionWishlistRemove,
	InteractionRating,
	InteractionReview,
	InteractionSearch,
	InteractionClick,
}

// InteractionDoc es el documento de la colección interactions.
// Es un log append-only: nunca se actualiza una interacción registrada.
type InteractionDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	ProductID int    `json:"productId" bson:"productId"`
	Type      string `json:"type" bson:"type"`

	Rating             *float64 `json:"rating,omitempty" bson:"rating,omitempty"` // 1-5, solo para type=rating
	ReviewText         string   `json:"reviewText,omitempty" bson:"reviewText,omitempty"`
	Quantity           int      `json:"quantity,omitempty" bson:"quantity,omitempty"`
	PriceAtInteraction *float64 `json:"priceAtInteraction,omitempty" bson:"priceAtInteraction,omitempty"`

	Timestamp int64 `json:"timestamp" bson:"timestamp"`
}

// interactionWeights: peso de cada tipo al construir el vector de interés
// de un usuario. Más peso = señal más fuerte.
var interactionWeights = map[string]float64{
	InteractionPurchase:       10,
	InteractionRating:         8,
	InteractionReview:         8,
	InteractionCartAdd:        6,
	InteractionWishlistAdd:    5,
	InteractionClick:          3,
	InteractionView:           2,
	InteractionSearch:         1,
	InteractionCartRemove:     -2,
	InteractionWishlistRemove: -1,
}

// InteractionWeight devuelve el peso del tipo dado (1 si es desconocido).
func InteractionWeight(interactionType string) float64 {
	if w, ok := interactionWeights[interactionType]; ok {
		return w
	}
	return 1
}

// ValidInteractionType valida el tipo antes de insertar.
func ValidInteractionType(t string) bool {
	_, ok := interactionWeights[t]
	return ok
}
