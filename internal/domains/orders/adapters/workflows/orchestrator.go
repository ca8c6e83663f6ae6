package workflows

import (
	"context"
	"errors"
	"fmt"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	orderworkflows "github.com/Apurer/go-gin-grubdash-api/internal/platform/temporal/workflows/orders"
)

var _ ports.PlacementOrchestrator = (*TemporalPlacement)(nil)

// WorkflowStarter is the part of the Temporal client the orchestrator needs.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
	GetWorkflow(ctx context.Context, workflowID string, runID string) client.WorkflowRun
}

// TemporalPlacement persists new orders through the placement workflow.
type TemporalPlacement struct {
	client    WorkflowStarter
	taskQueue string
}

// NewTemporalPlacement wires a Temporal client into the orchestrator.
func NewTemporalPlacement(c WorkflowStarter) *TemporalPlacement {
	return &TemporalPlacement{client: c, taskQueue: orderworkflows.OrderPlacementTaskQueue}
}

// PlaceOrder starts the workflow and waits for the stored order. The order id is
// unique, so it doubles as the workflow id; a retried start joins the running execution.
func (o *TemporalPlacement) PlaceOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order placement not configured")
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-placement-%s", order.ID),
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		orderworkflows.OrderPlacementWorkflowName,
		orderworkflows.OrderPlacementWorkflowInput{Order: mapper.FromDomainOrder(order), TraceID: workflowTraceID(ctx)},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
	}
	var placed mapper.Order
	if err := run.Get(ctx, &placed); err != nil {
		return nil, err
	}
	return mapper.ToDomainOrder(placed)
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
