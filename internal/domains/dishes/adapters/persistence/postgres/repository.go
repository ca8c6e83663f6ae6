package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists dishes in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&dishRecord{})
	}
	return repo
}

// dishRecord maps the dish aggregate to a relational table. Seq keeps insertion order.
type dishRecord struct {
	ID          string    `gorm:"primaryKey;column:id;size:64"`
	Seq         int64     `gorm:"column:seq;autoIncrement;uniqueIndex"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       int       `gorm:"column:price"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (dishRecord) TableName() string { return "dishes" }

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record dishRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Insert(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	record := toRecord(dish)
	if err := r.db.WithContext(ctx).Omit("seq").Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateID
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, dish *domain.Dish) (*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, errors.New("dish is nil")
	}
	result := r.db.WithContext(ctx).Model(&dishRecord{}).Where("id = ?", dish.ID).Updates(map[string]any{
		"name":        dish.Name,
		"description": dish.Description,
		"price":       dish.Price,
		"image_url":   dish.ImageURL,
		"updated_at":  gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.FindByID(ctx, dish.ID)
}

func (r *Repository) List(ctx context.Context) ([]*domain.Dish, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []dishRecord
	if err := r.db.WithContext(ctx).Order("seq").Find(&records).Error; err != nil {
		return nil, err
	}
	dishes := make([]*domain.Dish, 0, len(records))
	for i := range records {
		dishes = append(dishes, records[i].toDomain())
	}
	return dishes, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres dish repository not configured")
	}
	return nil
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

func (r dishRecord) toDomain() *domain.Dish {
	return &domain.Dish{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}
