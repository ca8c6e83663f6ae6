package ports

import (
	"context"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

// Service exposes the dish use cases to adapters.
type Service interface {
	CreateDish(ctx context.Context, data payload.Data) (*domain.Dish, error)
	ListDishes(ctx context.Context) ([]*domain.Dish, error)
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
	UpdateDish(ctx context.Context, id string, data payload.Data) (*domain.Dish, error)
}
