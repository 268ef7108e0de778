package service

import (
	"context"

	"tiendaml-pc5/internal/models"
	"tiendaml-pc5/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type StatsService struct {
	users        *repository.UserRepository
	products     *repository.ProductRepository
	interactions *repository.InteractionRepository
}

func NewStatsService(
	u *repository.UserRepository,
	p *repository.ProductRepository,
	i *repository.InteractionRepository,
) *StatsService {
	return &StatsService{users: u, products: p, interactions: i}
}

type Stats struct {
	Users              int64            `json:"users"`
	Products           int64            `json:"products"`
	Interactions       int64            `json:"interactions"`
	InteractionsByType map[string]int64 `json:"interactionsByType"`
}

// Overview devuelve los conteos globales de la tienda para el panel admin.
func (s *StatsService) Overview(ctx context.Context) (*Stats, error) {
	users, err := s.users.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	products, err := s.products.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	total, err := s.interactions.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	byType := make(map[string]int64, len(models.InteractionTypes))
	for _, t := range models.InteractionTypes {
		n, err := s.interactions.Count(ctx, bson.M{"type": t})
		if err != nil {
			return nil, err
		}
		if n > 0 {
			byType[t] = n
		}
	}

	return &Stats{
		Users:              users,
		Products:           products,
		Interactions:       total,
		InteractionsByType: byType,
	}, nil
}
