package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	orderactivities "github.com/Apurer/go-gin-grubdash-api/internal/platform/temporal/activities/orders"
)

// RunOrderPlacementSequence executes the activities that persist a validated order.
func RunOrderPlacementSequence(ctx workflow.Context, order mapper.Order) (*mapper.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order placement sequence started", "orderId", order.ID)
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        2 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        10 * time.Second,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{orderactivities.InvalidOrderErrorType},
		},
	}

	var placed mapper.Order
	err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), orderactivities.PersistOrderActivityName, order).Get(ctx, &placed)
	if err != nil {
		logger.Error("order placement sequence failed", "orderId", order.ID, "error", err)
		return nil, err
	}
	logger.Info("order placement sequence persisted", "orderId", placed.ID)
	return &placed, nil
}
