package grubdashserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/http/mapper"
	orderports "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the orders bounded context service.
type OrderAPI struct {
	service orderports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service orderports.Service) OrderAPI {
	return OrderAPI{service: service}
}

// Get /orders
// Lists every order in insertion order
func (api *OrderAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[[]orderhttpmapper.Order]{Data: orderhttpmapper.FromDomainOrders(orders)})
}

// Post /orders
// Places an order
func (api *OrderAPI) CreateOrder(c *gin.Context) {
	data, ok := readData(c)
	if !ok {
		return
	}
	order, err := api.service.CreateOrder(c.Request.Context(), data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dataResponse[orderhttpmapper.Order]{Data: orderhttpmapper.FromDomainOrder(order)})
}

// Get /orders/:orderId
// Reads an order
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	order, err := api.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[orderhttpmapper.Order]{Data: orderhttpmapper.FromDomainOrder(order)})
}

// Put /orders/:orderId
// Updates delivery details and status of an order
func (api *OrderAPI) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	data, ok := readData(c)
	if !ok {
		return
	}
	order, err := api.service.UpdateOrder(c.Request.Context(), id, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[orderhttpmapper.Order]{Data: orderhttpmapper.FromDomainOrder(order)})
}

// Delete /orders/:orderId
// Deletes a pending order
func (api *OrderAPI) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	if err := api.service.DeleteOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
