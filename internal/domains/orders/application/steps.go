package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

const resource = "Order"

// Payload fields in the wire spelling.
const (
	FieldID           = "id"
	FieldDeliverTo    = "deliverTo"
	FieldMobileNumber = "mobileNumber"
	FieldStatus       = "status"
	FieldDishes       = "dishes"
	FieldDishID       = "dishId"
	FieldQuantity     = "quantity"
)

func fieldSteps() []pipeline.Step[RequestContext] {
	steps := pipeline.FromRules(requestData,
		pipeline.Has(resource, FieldDeliverTo),
		pipeline.Has(resource, FieldMobileNumber),
		pipeline.Has(resource, FieldDishes),
		pipeline.NonEmptyString(resource, FieldDeliverTo),
		pipeline.NonEmptyString(resource, FieldMobileNumber),
	)
	return append(steps,
		pipeline.NewStep("dishes.non_empty_list", dishesIsNonEmptyList),
		pipeline.NewStep("dishes.quantities", quantitiesArePositive),
	)
}

func dishesIsNonEmptyList(_ context.Context, req *RequestContext) error {
	dishes, ok := requestData(req).List(FieldDishes)
	if !ok || len(dishes) == 0 {
		return pipeline.BadRequest("Order must include at least one dish")
	}
	return nil
}

// quantitiesArePositive reports the first line without a whole-number quantity above zero.
func quantitiesArePositive(_ context.Context, req *RequestContext) error {
	dishes, _ := requestData(req).List(FieldDishes)
	for index, raw := range dishes {
		if !validQuantity(raw) {
			return pipeline.BadRequest("Dish %d must have a valid quantity that is a number greater than 0", index)
		}
	}
	return nil
}

func validQuantity(raw any) bool {
	quantity, ok := payload.FromAny(raw).Integer(FieldQuantity)
	return ok && quantity > 0
}

func orderExists(repo ports.Repository) pipeline.Step[RequestContext] {
	return pipeline.NewStep("order.exists", func(ctx context.Context, req *RequestContext) error {
		order, err := repo.FindByID(ctx, req.RouteID)
		if errors.Is(err, ports.ErrNotFound) {
			return pipeline.NotFound("Order does not exist: %s", req.RouteID)
		}
		if err != nil {
			return fmt.Errorf("find order %s: %w", req.RouteID, err)
		}
		req.Order = order
		return nil
	})
}

func idMatchesRoute(_ context.Context, req *RequestContext) error {
	data := requestData(req)
	if !data.Truthy(FieldID) {
		return nil
	}
	bodyID, _ := data.Get(FieldID)
	if id, ok := bodyID.(string); ok && id == req.RouteID {
		return nil
	}
	return pipeline.BadRequest("Order id does not match route id. Order: %s, Route: %s.", payload.Describe(bodyID), req.RouteID)
}

// statusIsValid checks the requested status first, then refuses any change to a
// delivered order whatever status was requested.
func statusIsValid(_ context.Context, req *RequestContext) error {
	status, _ := requestData(req).String(FieldStatus)
	if status == "" || !domain.Status(status).IsValid() {
		return pipeline.BadRequest("Order must have a status of %s", statusList())
	}
	if req.Order != nil && req.Order.Status.IsTerminal() {
		return pipeline.BadRequest("A delivered order cannot be changed")
	}
	return nil
}

func pendingOnly(_ context.Context, req *RequestContext) error {
	if err := req.Order.EnsureDeletable(); err != nil {
		return pipeline.BadRequest("An order cannot be deleted unless it is pending.")
	}
	return nil
}

func statusList() string {
	names := make([]string, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		names = append(names, string(status))
	}
	return strings.Join(names, ", ")
}
