package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecItem es una recomendación individual dentro de la respuesta.
// El score siempre está normalizado a [0,1] relativo al usuario objetivo.
type RecItem struct {
	ProductID   int      `bson:"productId" json:"productId"`
	Score       float64  `bson:"score" json:"score"`
	ReasonTags  []string `bson:"reasonTags" json:"reasonTags"`
	Explanation string   `bson:"explanation,omitempty" json:"explanation,omitempty"`

	Product *ProductDoc `bson:"-" json:"product,omitempty"`
}

// Recommendation es el documento de historial que se guarda en Mongo
// después de responder (no romper la respuesta si falla el insert).
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int                `bson:"userId" json:"userId"`
	Strategy  string             `bson:"strategy" json:"strategy"` // estrategia efectivamente usada
	Params    any                `bson:"params" json:"params"`
	Items     []RecItem          `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
