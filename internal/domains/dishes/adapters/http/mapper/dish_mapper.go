package mapper

import (
	dishdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
)

// Dish is the wire shape rendered under the `data` key.
type Dish struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       int    `json:"price" yaml:"price"`
	ImageURL    string `json:"image_url" yaml:"image_url"`
}

// ToDomainDish converts a transport dish into the domain model, enforcing its invariants.
func ToDomainDish(dish Dish) (*dishdomain.Dish, error) {
	return dishdomain.NewDish(dish.ID, dish.Name, dish.Description, dish.Price, dish.ImageURL)
}

// FromDomainDish converts a domain dish to the transport representation.
func FromDomainDish(dish *dishdomain.Dish) Dish {
	if dish == nil {
		return Dish{}
	}
	return Dish{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		Price:       dish.Price,
		ImageURL:    dish.ImageURL,
	}
}

func FromDomainDishes(dishes []*dishdomain.Dish) []Dish {
	out := make([]Dish, 0, len(dishes))
	for _, dish := range dishes {
		out = append(out, FromDomainDish(dish))
	}
	return out
}
