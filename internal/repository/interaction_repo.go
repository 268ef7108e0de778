package repository

import (
	"context"
	"time"

	"tiendaml-pc5/internal/db"
	"tiendaml-pc5/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InteractionRepository struct {
	col *mongo.Collection
}

func NewInteractionRepository() *InteractionRepository {
	return &InteractionRepository{col: db.DB().Collection("interactions")}
}

// Insert registra una interacción. El log es append-only: nunca hay updates.
func (r *InteractionRepository) Insert(ctx context.Context, it *models.InteractionDoc) error {
	if it.Timestamp == 0 {
		it.Timestamp = time.Now().Unix()
	}
	_, err := r.col.InsertOne(ctx, it)
	return err
}

func (r *InteractionRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.InteractionDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeInteractions(ctx, cur)
}

// ListAll carga el log completo (snapshot para el motor de recomendación;
// el dataset es chico, decenas de usuarios y productos).
func (r *InteractionRepository) ListAll(ctx context.Context) ([]models.InteractionDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	return decodeInteractions(ctx, cur)
}

func (r *InteractionRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.col.CountDocuments(ctx, filter)
}

func decodeInteractions(ctx context.Context, cur *mongo.Cursor) ([]models.InteractionDoc, error) {
	var out []models.InteractionDoc
	for cur.Next(ctx) {
		var it models.InteractionDoc
		if err := cur.Decode(&it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, cur.Err()
}
