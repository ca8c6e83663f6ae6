package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the dishes and orders tables.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&dishRecord{},
		&orderRecord{},
	)
}

// Dish schema mirrors the dishes Postgres adapter.
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

// Order schema mirrors the orders Postgres adapter. Lines are stored as parallel arrays.
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
