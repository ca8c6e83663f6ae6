package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory, insertion-ordered dish collection.
type Repository struct {
	mu     sync.RWMutex
	dishes []*domain.Dish
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index := r.indexOf(id)
	if index < 0 {
		return nil, ports.ErrNotFound
	}
	return r.dishes[index].Clone(), nil
}

func (r *Repository) Insert(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(dish.ID) >= 0 {
		return nil, ports.ErrDuplicateID
	}
	r.dishes = append(r.dishes, dish.Clone())
	return dish.Clone(), nil
}

func (r *Repository) Update(_ context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	index := r.indexOf(dish.ID)
	if index < 0 {
		return nil, ports.ErrNotFound
	}
	stored := r.dishes[index]
	stored.Name = dish.Name
	stored.Description = dish.Description
	stored.Price = dish.Price
	stored.ImageURL = dish.ImageURL
	return stored.Clone(), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Dish, 0, len(r.dishes))
	for _, dish := range r.dishes {
		list = append(list, dish.Clone())
	}
	return list, nil
}

// indexOf scans linearly; identifiers are unique so the first match is the only one.
func (r *Repository) indexOf(id string) int {
	for i, dish := range r.dishes {
		if dish.ID == id {
			return i
		}
	}
	return -1
}
