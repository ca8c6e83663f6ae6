package ports

import (
	"context"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
)

// PlacementOrchestrator persists a freshly validated order, either inline or through
// a durable workflow.
type PlacementOrchestrator interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
