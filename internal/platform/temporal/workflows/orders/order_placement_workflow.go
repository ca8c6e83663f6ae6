package orders

import (
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/temporal/sequences"
)

const (
	// OrderPlacementWorkflowName is the public identifier for registering the workflow.
	OrderPlacementWorkflowName = "orders.workflows.Placement"
	// OrderPlacementTaskQueue is the queue consumed by the worker processing order workflows.
	OrderPlacementTaskQueue = "ORDER_PLACEMENT"
)

// OrderPlacementWorkflowInput carries an order that already passed the create pipeline.
type OrderPlacementWorkflowInput struct {
	Order   mapper.Order
	TraceID string
}

// OrderPlacementWorkflow persists a new order durably.
func OrderPlacementWorkflow(ctx workflow.Context, input OrderPlacementWorkflowInput) (*mapper.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderPlacementWorkflow started", withTraceID(input.TraceID, "orderId", input.Order.ID)...)
	placed, err := sequences.RunOrderPlacementSequence(ctx, input.Order)
	if err != nil {
		logger.Error("OrderPlacementWorkflow failed", withTraceID(input.TraceID, "orderId", input.Order.ID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderPlacementWorkflow completed", withTraceID(input.TraceID, "orderId", placed.ID)...)
	return placed, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
