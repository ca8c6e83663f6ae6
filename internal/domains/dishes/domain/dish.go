package domain

import "errors"

var (
	ErrEmptyName        = errors.New("dish name must not be empty")
	ErrEmptyDescription = errors.New("dish description must not be empty")
	ErrEmptyImageURL    = errors.New("dish image_url must not be empty")
	ErrInvalidPrice     = errors.New("dish price must be an integer greater than 0")
	ErrMissingID        = errors.New("dish id must not be empty")
)

// Dish is a menu item. ID is assigned once at creation and never changes.
type Dish struct {
	ID          string
	Name        string
	Description string
	Price       int
	ImageURL    string
}

// NewDish validates and constructs a Dish.
func NewDish(id, name, description string, price int, imageURL string) (*Dish, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	dish := &Dish{ID: id}
	if err := dish.Revise(name, description, price, imageURL); err != nil {
		return nil, err
	}
	return dish, nil
}

// Revise overwrites every mutable field. The identifier is left untouched.
func (d *Dish) Revise(name, description string, price int, imageURL string) error {
	if err := validate(name, description, price, imageURL); err != nil {
		return err
	}
	d.Name = name
	d.Description = description
	d.Price = price
	d.ImageURL = imageURL
	return nil
}

// Clone returns a detached copy.
func (d *Dish) Clone() *Dish {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

func validate(name, description string, price int, imageURL string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case description == "":
		return ErrEmptyDescription
	case imageURL == "":
		return ErrEmptyImageURL
	case price <= 0:
		return ErrInvalidPrice
	}
	return nil
}
