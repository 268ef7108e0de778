package repository

import (
	"context"

	"tiendaml-pc5/internal/db"
	"tiendaml-pc5/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{col: db.DB().Collection("products")}
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int) (*models.ProductDoc, error) {
	var p models.ProductDoc
	err := r.col.FindOne(ctx, bson.M{"productId": productID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepository) GetNextProductID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "productId", Value: -1}})
	var p models.ProductDoc
	err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return p.ProductID + 1, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.ProductDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// UpdateByID aplica un $set parcial sobre el producto.
func (r *ProductRepository) UpdateByID(ctx context.Context, productID int, update bson.M) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"productId": productID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Search filtra el catálogo por texto/categoría/marca con paginación.
func (r *ProductRepository) Search(
	ctx context.Context,
	q, category, brand string,
	limit, offset int,
) ([]models.ProductDoc, error) {

	filter := bson.M{}
	if q != "" {
		filter["name"] = bson.M{"$regex": q, "$options": "i"}
	}
	if category != "" {
		filter["category"] = category
	}
	if brand != "" {
		filter["brand"] = brand
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "productId", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProductDoc
	for cur.Next(ctx) {
		var p models.ProductDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

// ListAll carga el catálogo completo (snapshot para el motor).
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.ProductDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProductDoc
	for cur.Next(ctx) {
		var p models.ProductDoc
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, cur.Err()
}

func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.col.CountDocuments(ctx, filter)
}
