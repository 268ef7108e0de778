package models

// UserDoc es el documento de la colección users.
type UserDoc struct {
	UserID       int    `json:"userId" bson:"userId"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`

	FullName string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`

	// Preferencias explícitas (señal secundaria del filtro por contenido)
	PreferredCategories []string `json:"preferredCategories,omitempty" bson:"preferredCategories,omitempty"`
	PreferredBrands     []string `json:"preferredBrands,omitempty" bson:"preferredBrands,omitempty"`
	PriceRangeMin       *float64 `json:"priceRangeMin,omitempty" bson:"priceRangeMin,omitempty"`
	PriceRangeMax       *float64 `json:"priceRangeMax,omitempty" bson:"priceRangeMax,omitempty"`

	IsActive   bool `json:"isActive" bson:"isActive"`
	IsVerified bool `json:"isVerified" bson:"isVerified"`

	// Métricas agregadas (solo lectura para el motor de recomendación)
	TotalPurchases int     `json:"totalPurchases" bson:"totalPurchases"`
	TotalSpent     float64 `json:"totalSpent" bson:"totalSpent"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}
