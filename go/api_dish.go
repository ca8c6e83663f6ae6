package grubdashserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dishhttpmapper "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/http/mapper"
	dishports "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
)

// DishAPI wires HTTP transport with the dishes bounded context service.
type DishAPI struct {
	service dishports.Service
}

// NewDishAPI creates a DishAPI backed by the provided service.
func NewDishAPI(service dishports.Service) DishAPI {
	return DishAPI{service: service}
}

// Get /dishes
// Lists every dish in insertion order
func (api *DishAPI) ListDishes(c *gin.Context) {
	dishes, err := api.service.ListDishes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[[]dishhttpmapper.Dish]{Data: dishhttpmapper.FromDomainDishes(dishes)})
}

// Post /dishes
// Creates a dish
func (api *DishAPI) CreateDish(c *gin.Context) {
	data, ok := readData(c)
	if !ok {
		return
	}
	dish, err := api.service.CreateDish(c.Request.Context(), data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dataResponse[dishhttpmapper.Dish]{Data: dishhttpmapper.FromDomainDish(dish)})
}

// Get /dishes/:dishId
// Reads a dish
func (api *DishAPI) GetDish(c *gin.Context) {
	id, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	dish, err := api.service.GetDish(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[dishhttpmapper.Dish]{Data: dishhttpmapper.FromDomainDish(dish)})
}

// Put /dishes/:dishId
// Updates a dish
func (api *DishAPI) UpdateDish(c *gin.Context) {
	id, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	data, ok := readData(c)
	if !ok {
		return
	}
	dish, err := api.service.UpdateDish(c.Request.Context(), id, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dataResponse[dishhttpmapper.Dish]{Data: dishhttpmapper.FromDomainDish(dish)})
}
