package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	platformredis "github.com/Apurer/go-gin-grubdash-api/internal/platform/redis"
)

var _ ports.Repository = (*Repository)(nil)

const keyPrefix = "grubdash:dishes"

// Repository persists dishes in Redis.
type Repository struct {
	dishes *platformredis.Collection[dishRecord]
}

func NewRepository(client *goredis.Client) *Repository {
	return &Repository{dishes: platformredis.NewCollection[dishRecord](client, keyPrefix)}
}

type dishRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Dish, error) {
	record, err := r.dishes.Find(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return record.toDomain(), nil
}

func (r *Repository) Insert(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	if err := r.dishes.Append(ctx, dish.ID, toRecord(dish)); err != nil {
		return nil, mapError(err)
	}
	return dish.Clone(), nil
}

func (r *Repository) Update(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	if err := r.dishes.Replace(ctx, dish.ID, toRecord(dish)); err != nil {
		return nil, mapError(err)
	}
	return dish.Clone(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Dish, error) {
	records, err := r.dishes.All(ctx)
	if err != nil {
		return nil, err
	}
	dishes := make([]*domain.Dish, 0, len(records))
	for _, record := range records {
		dishes = append(dishes, record.toDomain())
	}
	return dishes, nil
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

func toRecord(dish *domain.Dish) dishRecord {
	return dishRecord{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		ImageURL:    dish.ImageURL,
	}
}

func (r *dishRecord) toDomain() *domain.Dish {
	return &domain.Dish{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}
