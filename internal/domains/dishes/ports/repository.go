package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
)

var (
	ErrNotFound    = errors.New("dish not found")
	ErrDuplicateID = errors.New("dish id already exists")
)

// Repository is the single mutation point for the dish collection. Implementations
// preserve insertion order and hand out copies, never references into the collection.
type Repository interface {
	FindByID(ctx context.Context, id string) (*domain.Dish, error)
	Insert(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, dish *domain.Dish) (*domain.Dish, error)
	List(ctx context.Context) ([]*domain.Dish, error)
}
