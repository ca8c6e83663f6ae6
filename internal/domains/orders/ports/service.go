package ports

import (
	"context"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

// Service exposes the order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, data payload.Data) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, data payload.Data) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}
