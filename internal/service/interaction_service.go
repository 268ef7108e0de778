package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/repository"
)

type InteractionService struct {
	interactions *repository.InteractionRepository
	products     *repository.ProductRepository
	users        *repository.UserRepository
}

func NewInteractionService(
	i *repository.InteractionRepository,
	p *repository.ProductRepository,
	u *repository.UserRepository,
) *InteractionService {
	return &InteractionService{
		interactions: i,
		products:     p,
		users:        u,
	}
}

type RecordInteractionData struct {
	ProductID  int
	Type       string
	Rating     *float64
	ReviewText string
	Quantity   int
}

// Record registra una interacción en el log. Si es una compra, además
// actualiza los contadores agregados del usuario (no rompe la operación
// si ese update falla).
func (s *InteractionService) Record(ctx context.Context, userID int, data RecordInteractionData) (*models.InteractionDoc, error) {
	if !models.ValidInteractionType(data.Type) {
		return nil, fmt.Errorf("%w: tipo de interacción %q", ErrInvalidArgument, data.Type)
	}
	if data.Type == models.InteractionRating {
		if data.Rating == nil || *data.Rating < 1 || *data.Rating > 5 {
			return nil, fmt.Errorf("%w: rating debe estar entre 1 y 5", ErrInvalidArgument)
		}
	}

	p, err := s.products.GetByID(ctx, data.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, data.ProductID)
	}

	qty := data.Quantity
	if qty <= 0 {
		qty = 1
	}

	it := &models.InteractionDoc{
		UserID:             userID,
		ProductID:          data.ProductID,
		Type:               data.Type,
		Rating:             data.Rating,
		ReviewText:         data.ReviewText,
		Quantity:           qty,
		PriceAtInteraction: &p.Price,
		Timestamp:          time.Now().Unix(),
	}

	if err := s.interactions.Insert(ctx, it); err != nil {
		return nil, err
	}

	if data.Type == models.InteractionPurchase {
		amount := p.Price * float64(qty)
		if err := s.users.IncrementPurchase(ctx, userID, amount); err != nil {
			log.Printf("[interactions] error actualizando métricas de user %d: %v", userID, err)
		}
	}

	return it, nil
}

func (s *InteractionService) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.InteractionDoc, error) {
	return s.interactions.GetByUser(ctx, userID, limit, offset)
}
