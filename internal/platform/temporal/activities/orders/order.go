package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
)

const (
	// PersistOrderActivityName stores a validated order.
	PersistOrderActivityName = "orders.activities.PersistOrder"
	// InvalidOrderErrorType marks payloads that can never be persisted; they are not retried.
	InvalidOrderErrorType = "orders.InvalidOrder"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	repo orderports.Repository
}

func NewActivities(repo orderports.Repository) *Activities {
	return &Activities{repo: repo}
}

// PersistOrder inserts the order. A retry that finds the order already stored returns
// the stored copy instead of failing on the duplicate id.
func (a *Activities) PersistOrder(ctx context.Context, input mapper.Order) (*mapper.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.repo == nil {
		logger.Error("order persist activity not initialized", "orderId", input.ID)
		return nil, errors.New("order persist activity not initialized")
	}
	existing, err := a.repo.FindByID(ctx, input.ID)
	if err == nil {
		logger.Info("PersistOrder found order from a prior attempt", "orderId", input.ID)
		out := mapper.FromDomainOrder(existing)
		return &out, nil
	}
	if !errors.Is(err, orderports.ErrNotFound) {
		logger.Error("PersistOrder lookup failed", "orderId", input.ID, "error", err)
		return nil, err
	}

	order, err := mapper.ToDomainOrder(input)
	if err != nil {
		logger.Error("PersistOrder received invalid order", "orderId", input.ID, "error", err)
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), InvalidOrderErrorType, err)
	}
	logger.Info("PersistOrder activity started", "orderId", order.ID)
	stored, err := a.repo.Insert(ctx, order)
	if err != nil {
		logger.Error("PersistOrder activity failed", "orderId", order.ID, "error", err)
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", stored.ID)
	out := mapper.FromDomainOrder(stored)
	return &out, nil
}
