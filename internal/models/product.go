package models

// ProductDoc es el documento de la colección products.
// Para el motor de recomendación es data de referencia inmutable.
type ProductDoc struct {
	ProductID   int    `json:"productId" bson:"productId"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Category    string `json:"category" bson:"category"`
	Subcategory string `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Brand       string `json:"brand,omitempty" bson:"brand,omitempty"`

	Price         float64  `json:"price" bson:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Currency      string   `json:"currency" bson:"currency"`

	StockQuantity int  `json:"stockQuantity" bson:"stockQuantity"`
	IsAvailable   bool `json:"isAvailable" bson:"isAvailable"`

	Color string `json:"color,omitempty" bson:"color,omitempty"`
	Size  string `json:"size,omitempty" bson:"size,omitempty"`

	AverageRating float64 `json:"averageRating" bson:"averageRating"`
	ReviewCount   int     `json:"reviewCount" bson:"reviewCount"`

	Tags     []string `json:"tags,omitempty" bson:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`

	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt" bson:"updatedAt"`
}

// IsOnSale indica si el producto tiene descuento activo.
func (p *ProductDoc) IsOnSale() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// Payload para crear un producto (endpoints de admin).
type ProductCreateRequest struct {
	Name        string   `json:"name"` // obligatorio
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"` // obligatorio
	Subcategory string   `json:"subcategory,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Price       float64  `json:"price"` // obligatorio
	Currency    string   `json:"currency,omitempty"`
	Stock       int      `json:"stockQuantity,omitempty"`
	Color       string   `json:"color,omitempty"`
	Size        string   `json:"size,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// Payload para actualización parcial de producto.
type ProductUpdateRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Subcategory *string   `json:"subcategory,omitempty"`
	Brand       *string   `json:"brand,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Stock       *int      `json:"stockQuantity,omitempty"`
	IsAvailable *bool     `json:"isAvailable,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Size        *string   `json:"size,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}
