package service

import (
	"context"
	"fmt"
	"time"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ProductService struct {
	products *repository.ProductRepository
}

func NewProductService(p *repository.ProductRepository) *ProductService {
	return &ProductService{products: p}
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.ProductDoc, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return p, nil
}

func (s *ProductService) Search(
	ctx context.Context,
	q, category, brand string,
	limit, offset int,
) ([]models.ProductDoc, error) {
	return s.products.Search(ctx, q, category, brand, limit, offset)
}

// CreateProduct da de alta un producto (solo admin).
func (s *ProductService) CreateProduct(ctx context.Context, req models.ProductCreateRequest) (*models.ProductDoc, error) {
	if req.Name == "" || req.Category == "" {
		return nil, fmt.Errorf("%w: name y category son obligatorios", ErrInvalidArgument)
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("%w: price debe ser > 0", ErrInvalidArgument)
	}

	nextID, err := s.products.GetNextProductID(ctx)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p := &models.ProductDoc{
		ProductID:     nextID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Brand:         req.Brand,
		Price:         req.Price,
		Currency:      currency,
		StockQuantity: req.Stock,
		IsAvailable:   true,
		Color:         req.Color,
		Size:          req.Size,
		Tags:          req.Tags,
		ImageURL:      req.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.products.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct aplica una actualización parcial (solo admin).
func (s *ProductService) UpdateProduct(ctx context.Context, productID int, req models.ProductUpdateRequest) error {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}

	update := bson.M{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Subcategory != nil {
		update["subcategory"] = *req.Subcategory
	}
	if req.Brand != nil {
		update["brand"] = *req.Brand
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return fmt.Errorf("%w: price debe ser > 0", ErrInvalidArgument)
		}
		update["price"] = *req.Price
	}
	if req.Stock != nil {
		update["stockQuantity"] = *req.Stock
	}
	if req.IsAvailable != nil {
		update["isAvailable"] = *req.IsAvailable
	}
	if req.Color != nil {
		update["color"] = *req.Color
	}
	if req.Size != nil {
		update["size"] = *req.Size
	}
	if req.Tags != nil {
		update["tags"] = *req.Tags
	}
	if req.ImageURL != nil {
		update["imageUrl"] = *req.ImageURL
	}

	if len(update) == 0 {
		return fmt.Errorf("%w: nada que actualizar", ErrInvalidArgument)
	}

	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	return s.products.UpdateByID(ctx, productID, update)
}
