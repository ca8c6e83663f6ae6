package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	platformredis "github.com/Apurer/go-gin-grubdash-api/internal/platform/redis"
)

var _ ports.Repository = (*Repository)(nil)

const keyPrefix = "grubdash:orders"

// Repository persists orders in Redis.
type Repository struct {
	orders *platformredis.Collection[orderRecord]
}

func NewRepository(client *goredis.Client) *Repository {
	return &Repository{orders: platformredis.NewCollection[orderRecord](client, keyPrefix)}
}

type orderRecord struct {
	ID           string       `json:"id"`
	DeliverTo    string       `json:"deliverTo"`
	MobileNumber string       `json:"mobileNumber"`
	Status       string       `json:"status,omitempty"`
	Dishes       []lineRecord `json:"dishes"`
}

type lineRecord struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	record, err := r.orders.Find(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if err := r.orders.Append(ctx, order.ID, toRecord(order)); err != nil {
		return nil, mapError(err)
	}
	return order.Clone(), nil
}

// Update overwrites delivery details and status on the stored record; its lines are kept.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record, err := r.orders.Find(ctx, order.ID)
	if err != nil {
		return nil, mapError(err)
	}
	record.DeliverTo = order.DeliverTo
	record.MobileNumber = order.MobileNumber
	record.Status = string(order.Status)
	if err := r.orders.Replace(ctx, order.ID, *record); err != nil {
		return nil, mapError(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return mapError(r.orders.Remove(ctx, id))
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	records, err := r.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, record.toDomain())
	}
	return orders, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, platformredis.ErrNotFound):
		return ports.ErrNotFound
	case errors.Is(err, platformredis.ErrExists):
		return ports.ErrDuplicateID
	}
	return err
}

func toRecord(order *domain.Order) orderRecord {
	lines := make([]lineRecord, 0, len(order.Dishes))
	for _, line := range order.Dishes {
		lines = append(lines, lineRecord{DishID: line.DishID, Quantity: line.Quantity})
	}
	return orderRecord{
		ID:           order.ID,
		DeliverTo:    order.DeliverTo,
		MobileNumber: order.MobileNumber,
		Status:       string(order.Status),
		Dishes:       lines,
	}
}

func (r *orderRecord) toDomain() *domain.Order {
	lines := make([]domain.Line, 0, len(r.Dishes))
	for _, line := range r.Dishes {
		lines = append(lines, domain.Line{DishID: line.DishID, Quantity: line.Quantity})
	}
	return &domain.Order{
		ID:           r.ID,
		DeliverTo:    r.DeliverTo,
		MobileNumber: r.MobileNumber,
		Status:       domain.Status(r.Status),
		Dishes:       lines,
	}
}
