package grubdashserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-gin-grubdash-api/internal/shared/errors"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the resource handlers mounted by the router.
type ApiHandleFunctions struct {
	// Routes for the dishes resource
	DishAPI DishAPI
	// Routes for the orders resource
	OrderAPI OrderAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine. Unknown paths answer
// 404 and known paths with an unsupported method answer 405.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	router.HandleMethodNotAllowed = true
	router.NoRoute(PathNotFound)
	router.NoMethod(MethodNotAllowed)
	return router
}

// DefaultHandleFunc answers routes that have no handler wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

// PathNotFound answers requests for paths no route matches.
func PathNotFound(c *gin.Context) {
	respondProblem(c, apierrors.ErrNotFound.WithMessage(fmt.Sprintf("Path not found: %s", c.Request.URL.Path)))
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(c *gin.Context) {
	respondProblem(c, apierrors.ErrMethodNotAllowed.WithMessage(fmt.Sprintf("%s not allowed for %s", c.Request.Method, c.Request.URL.Path)))
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			"Health",
			http.MethodGet,
			"/healthz",
			Health,
		},
		{
			"ListDishes",
			http.MethodGet,
			"/dishes",
			handleFunctions.DishAPI.ListDishes,
		},
		{
			"CreateDish",
			http.MethodPost,
			"/dishes",
			handleFunctions.DishAPI.CreateDish,
		},
		{
			"GetDish",
			http.MethodGet,
			"/dishes/:dishId",
			handleFunctions.DishAPI.GetDish,
		},
		{
			"UpdateDish",
			http.MethodPut,
			"/dishes/:dishId",
			handleFunctions.DishAPI.UpdateDish,
		},
		{
			"ListOrders",
			http.MethodGet,
			"/orders",
			handleFunctions.OrderAPI.ListOrders,
		},
		{
			"CreateOrder",
			http.MethodPost,
			"/orders",
			handleFunctions.OrderAPI.CreateOrder,
		},
		{
			"GetOrder",
			http.MethodGet,
			"/orders/:orderId",
			handleFunctions.OrderAPI.GetOrder,
		},
		{
			"UpdateOrder",
			http.MethodPut,
			"/orders/:orderId",
			handleFunctions.OrderAPI.UpdateOrder,
		},
		{
			"DeleteOrder",
			http.MethodDelete,
			"/orders/:orderId",
			handleFunctions.OrderAPI.DeleteOrder,
		},
	}
}
