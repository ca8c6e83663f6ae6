// Package seed loads the initial dish and order collections from a YAML (or JSON) file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	dishhttpmapper "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/http/mapper"
	dishports "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	orderhttpmapper "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
)

// File is the on-disk seed layout.
type File struct {
	Dishes []dishhttpmapper.Dish  `yaml:"dishes"`
	Orders []orderhttpmapper.Order `yaml:"orders"`
}

// Result counts the records inserted by Apply.
type Result struct {
	Dishes int
	Orders int
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes seed content. JSON documents are accepted since they are valid YAML.
func Parse(raw []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &file, nil
}

// Apply inserts every seeded record in file order. Records whose id already exists are
// skipped so a persistent store can be seeded on every start.
func Apply(ctx context.Context, file *File, dishes dishports.Repository, orders orderports.Repository) (Result, error) {
	var result Result
	if file == nil {
		return result, nil
	}
	for _, entry := range file.Dishes {
		dish, err := dishhttpmapper.ToDomainDish(entry)
		if err != nil {
			return result, fmt.Errorf("seed dish %q: %w", entry.ID, err)
		}
		if _, err := dishes.FindByID(ctx, dish.ID); err == nil {
			continue
		} else if !errors.Is(err, dishports.ErrNotFound) {
			return result, err
		}
		if _, err := dishes.Insert(ctx, dish); err != nil {
			return result, fmt.Errorf("seed dish %q: %w", dish.ID, err)
		}
		result.Dishes++
	}
	for _, entry := range file.Orders {
		order, err := orderhttpmapper.ToDomainOrder(entry)
		if err != nil {
			return result, fmt.Errorf("seed order %q: %w", entry.ID, err)
		}
		if _, err := orders.FindByID(ctx, order.ID); err == nil {
			continue
		} else if !errors.Is(err, orderports.ErrNotFound) {
			return result, err
		}
		if _, err := orders.Insert(ctx, order); err != nil {
			return result, fmt.Errorf("seed order %q: %w", order.ID, err)
		}
		result.Orders++
	}
	return result, nil
}
