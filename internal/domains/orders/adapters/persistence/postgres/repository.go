package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table. Line items are stored
// as two parallel arrays; Seq keeps insertion order.
type orderRecord struct {
	ID           string         `gorm:"primaryKey;column:id;size:64"`
	Seq          int64          `gorm:"column:seq;autoIncrement;uniqueIndex"`
	DeliverTo    string         `gorm:"column:deliver_to"`
	MobileNumber string         `gorm:"column:mobile_number"`
	Status       string         `gorm:"column:status;type:varchar(32);index"`
	DishIDs      pq.StringArray `gorm:"column:dish_ids;type:text[]"`
	Quantities   pq.Int64Array  `gorm:"column:quantities;type:bigint[]"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Omit("seq").Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicateID
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// Update overwrites delivery details and status; line item columns are not touched.
func (r *Repository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	result := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", order.ID).Updates(map[string]any{
		"deliver_to":    order.DeliverTo,
		"mobile_number": order.MobileNumber,
		"status":        string(order.Status),
		"updated_at":    gorm.Expr("NOW()"),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.FindByID(ctx, order.ID)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&orderRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("seq").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	rec := orderRecord{
		ID:           order.ID,
		DeliverTo:    order.DeliverTo,
		MobileNumber: order.MobileNumber,
		Status:       string(order.Status),
		DishIDs:      make(pq.StringArray, 0, len(order.Dishes)),
		Quantities:   make(pq.Int64Array, 0, len(order.Dishes)),
	}
	for _, line := range order.Dishes {
		rec.DishIDs = append(rec.DishIDs, line.DishID)
		rec.Quantities = append(rec.Quantities, int64(line.Quantity))
	}
	return rec
}

func (r orderRecord) toDomain() *domain.Order {
	lines := make([]domain.Line, 0, len(r.DishIDs))
	for i, dishID := range r.DishIDs {
		line := domain.Line{DishID: dishID}
		if i < len(r.Quantities) {
			line.Quantity = int(r.Quantities[i])
		}
		lines = append(lines, line)
	}
	return &domain.Order{
		ID:           r.ID,
		DeliverTo:    r.DeliverTo,
		MobileNumber: r.MobileNumber,
		Status:       domain.Status(r.Status),
		Dishes:       lines,
	}
}
