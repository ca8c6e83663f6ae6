package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

const resource = "Dish"

// Payload fields in the wire spelling.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
)

func requestData(req *RequestContext) payload.Data {
	return req.data()
}

// fieldSteps are shared by create and update, in order: presence, non-empty strings, price.
func fieldSteps() []pipeline.Step[RequestContext] {
	steps := pipeline.FromRules(requestData,
		pipeline.Has(resource, FieldName),
		pipeline.Has(resource, FieldDescription),
		pipeline.Has(resource, FieldPrice),
		pipeline.Has(resource, FieldImageURL),
		pipeline.NonEmptyString(resource, FieldName),
		pipeline.NonEmptyString(resource, FieldDescription),
		pipeline.NonEmptyString(resource, FieldImageURL),
	)
	return append(steps, pipeline.NewStep("price.positive_integer", priceIsPositiveInteger))
}

func priceIsPositiveInteger(_ context.Context, req *RequestContext) error {
	price, ok := req.data().Integer(FieldPrice)
	if !ok || price <= 0 {
		return pipeline.BadRequest("Dish must have a price that is an integer greater than 0")
	}
	return nil
}

// dishExists binds the dish named by the route into the request context.
func dishExists(repo ports.Repository) pipeline.Step[RequestContext] {
	return pipeline.NewStep("dish.exists", func(ctx context.Context, req *RequestContext) error {
		dish, err := repo.FindByID(ctx, req.RouteID)
		if errors.Is(err, ports.ErrNotFound) {
			return pipeline.NotFound("Dish does not exist: %s", req.RouteID)
		}
		if err != nil {
			return fmt.Errorf("find dish %s: %w", req.RouteID, err)
		}
		req.Dish = dish
		return nil
	})
}

// idMatchesRoute only applies when the body carries an id at all.
func idMatchesRoute(_ context.Context, req *RequestContext) error {
	data := req.data()
	if !data.Truthy(FieldID) {
		return nil
	}
	bodyID, _ := data.Get(FieldID)
	if id, ok := bodyID.(string); ok && id == req.RouteID {
		return nil
	}
	return pipeline.BadRequest("Dish id does not match route id. Dish: %s, Route: %s", payload.Describe(bodyID), req.RouteID)
}
