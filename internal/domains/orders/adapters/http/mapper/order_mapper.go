package mapper

import (
	orderdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
)

// Order is the wire shape rendered under the `data` key. Status is omitted until set.
type Order struct {
	ID           string      `json:"id" yaml:"id"`
	DeliverTo    string      `json:"deliverTo" yaml:"deliverTo"`
	MobileNumber string      `json:"mobileNumber" yaml:"mobileNumber"`
	Status       string      `json:"status,omitempty" yaml:"status,omitempty"`
	Dishes       []OrderLine `json:"dishes" yaml:"dishes"`
}

type OrderLine struct {
	DishID   string `json:"dishId" yaml:"dishId"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// ToDomainOrder converts a transport order into the domain model, enforcing its invariants.
func ToDomainOrder(order Order) (*orderdomain.Order, error) {
	lines := make([]orderdomain.Line, 0, len(order.Dishes))
	for _, line := range order.Dishes {
		lines = append(lines, orderdomain.Line{DishID: line.DishID, Quantity: line.Quantity})
	}
	return orderdomain.Rehydrate(order.ID, order.DeliverTo, order.MobileNumber, orderdomain.Status(order.Status), lines)
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	lines := make([]OrderLine, 0, len(order.Dishes))
	for _, line := range order.Dishes {
		lines = append(lines, OrderLine{DishID: line.DishID, Quantity: line.Quantity})
	}
	return Order{
		ID:           order.ID,
		DeliverTo:    order.DeliverTo,
		MobileNumber: order.MobileNumber,
		Status:       string(order.Status),
		Dishes:       lines,
	}
}

func FromDomainOrders(orders []*orderdomain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}
