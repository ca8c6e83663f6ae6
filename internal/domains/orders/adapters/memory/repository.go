package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory, insertion-ordered order collection.
type Repository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	index := r.indexOf(id)
	if index < 0 {
		return nil, ports.ErrNotFound
	}
	return r.orders[index].Clone(), nil
}

func (r *Repository) Insert(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(order.ID) >= 0 {
		return nil, ports.ErrDuplicateID
	}
	r.orders = append(r.orders, order.Clone())
	return order.Clone(), nil
}

// Update overwrites delivery details and status; stored line items are left as they are.
func (r *Repository) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	index := r.indexOf(order.ID)
	if index < 0 {
		return nil, ports.ErrNotFound
	}
	stored := r.orders[index]
	stored.DeliverTo = order.DeliverTo
	stored.MobileNumber = order.MobileNumber
	stored.Status = order.Status
	return stored.Clone(), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	index := r.indexOf(id)
	if index < 0 {
		return ports.ErrNotFound
	}
	r.removeAt(index)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}

func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.orders, func(order *domain.Order) bool {
		return order.ID == id
	})
}

// removeAt drops exactly one element; later elements shift down.
func (r *Repository) removeAt(index int) {
	r.orders = slices.Delete(r.orders, index, index+1)
}
