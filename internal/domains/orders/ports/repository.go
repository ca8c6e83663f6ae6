package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
)

var (
	ErrNotFound    = errors.New("order not found")
	ErrDuplicateID = errors.New("order id already exists")
)

// Repository is the single mutation point for the order collection. Implementations
// preserve insertion order and hand out copies.
type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Insert(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Order, error)
}
