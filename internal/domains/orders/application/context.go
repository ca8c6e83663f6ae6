package application

import (
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
)

// RequestContext is the per-request state threaded through an order pipeline.
// Order is bound by the existence step.
type RequestContext struct {
	RouteID string
	Data    payload.Data
	Order   *domain.Order
}

func requestData(req *RequestContext) payload.Data {
	if req.Data == nil {
		return payload.Data{}
	}
	return req.Data
}
