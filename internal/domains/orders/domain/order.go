package domain

import (
	"errors"
	"slices"
)

// Status enumerates order progression. The zero value means no status has been
// assigned yet, which is how every order starts out.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// Statuses lists the valid states in lifecycle order.
var Statuses = []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

var (
	ErrMissingID          = errors.New("order id must not be empty")
	ErrEmptyDeliverTo     = errors.New("order deliverTo must not be empty")
	ErrEmptyMobileNumber  = errors.New("order mobileNumber must not be empty")
	ErrNoDishes           = errors.New("order must include at least one dish")
	ErrInvalidQuantity    = errors.New("order line quantity must be greater than zero")
	ErrInvalidStatus      = errors.New("order status is invalid")
	ErrDeliveredImmutable = errors.New("a delivered order cannot be changed")
	ErrNotPending         = errors.New("an order cannot be deleted unless it is pending")
)

// IsValid reports whether s is one of the enumerated states.
func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

// IsTerminal reports whether s admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Line is one dish in an order.
type Line struct {
	DishID   string
	Quantity int
}

// Order is the delivery order aggregate.
type Order struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	Status       Status
	Dishes       []Line
}

// NewOrder validates and constructs an order without a status.
func NewOrder(id, deliverTo, mobileNumber string, dishes []Line) (*Order, error) {
	return Rehydrate(id, deliverTo, mobileNumber, "", dishes)
}

// Rehydrate rebuilds an order from storage or seed data, where a status may already be set.
func Rehydrate(id, deliverTo, mobileNumber string, status Status, dishes []Line) (*Order, error) {
	if id == "" {
		return nil, ErrMissingID
	}
	if status != "" && !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	order := &Order{
		ID:           id,
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Status:       status,
		Dishes:       slices.Clone(dishes),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the field invariants on the aggregate.
func (o *Order) Validate() error {
	switch {
	case o.DeliverTo == "":
		return ErrEmptyDeliverTo
	case o.MobileNumber == "":
		return ErrEmptyMobileNumber
	case len(o.Dishes) == 0:
		return ErrNoDishes
	}
	for _, line := range o.Dishes {
		if line.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// TransitionTo moves the order into status. Any valid state is reachable except
// out of delivered, which is absorbing.
func (o *Order) TransitionTo(status Status) error {
	if o.Status.IsTerminal() {
		return ErrDeliveredImmutable
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// Revise overwrites the delivery details and status. Line items are kept as they are.
func (o *Order) Revise(deliverTo, mobileNumber string, status Status) error {
	if deliverTo == "" {
		return ErrEmptyDeliverTo
	}
	if mobileNumber == "" {
		return ErrEmptyMobileNumber
	}
	if err := o.TransitionTo(status); err != nil {
		return err
	}
	o.DeliverTo = deliverTo
	o.MobileNumber = mobileNumber
	return nil
}

// EnsureDeletable allows deletion only while the order is pending.
func (o *Order) EnsureDeletable() error {
	if o.Status != StatusPending {
		return ErrNotPending
	}
	return nil
}

// Clone returns a detached copy, line items included.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Dishes = slices.Clone(o.Dishes)
	return &clone
}
