package application

import (
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

// RequestContext is the per-request state threaded through a dish pipeline.
// Dish is bound by the existence step and read by later steps and the terminal action.
type RequestContext struct {
	RouteID string
	Data    payload.Data
	Dish    *domain.Dish
}

func (r *RequestContext) data() payload.Data {
	if r.Data == nil {
		return payload.Data{}
	}
	return r.Data
}
