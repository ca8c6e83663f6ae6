package grubdashserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dishmemory "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/adapters/memory"
	dishapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/application"
	ordermemory "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/application"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/ids"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type problem struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Instance string `json:"instance"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlers := ApiHandleFunctions{
		DishAPI:  NewDishAPI(dishapp.NewService(dishmemory.NewRepository(), dishapp.WithIDGenerator(ids.Sequence("dish")))),
		OrderAPI: NewOrderAPI(orderapp.NewService(ordermemory.NewRepository(), orderapp.WithIDGenerator(ids.Sequence("order")))),
	}
	return NewRouterWithGinEngine(gin.New(), handlers)
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) problem {
	t.Helper()
	var p problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, w.Code, p.Status)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	return p
}

const pasta = `{"data":{"name":"Pasta","description":"Tasty","price":12,"image_url":"u"}}`

func TestDishes_CreateReadUpdateList(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/dishes", pasta)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	decodeData(t, w, &created)
	assert.Equal(t, "dish-1", created["id"])
	assert.Equal(t, float64(12), created["price"])

	w = do(router, http.MethodGet, "/dishes/dish-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"id":"dish-1","name":"Pasta","description":"Tasty","price":12,"image_url":"u"}}`, w.Body.String())

	w = do(router, http.MethodPut, "/dishes/dish-1", `{"data":{"id":"dish-1","name":"Soup","description":"Warm","price":7,"image_url":"v"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"id":"dish-1","name":"Soup","description":"Warm","price":7,"image_url":"v"}}`, w.Body.String())

	w = do(router, http.MethodGet, "/dishes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	decodeData(t, w, &list)
	require.Len(t, list, 1)
}

func TestDishes_EmptyListIsArray(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/dishes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestDishes_Rejections(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/dishes", `{"data":{"name":"Pasta","description":"Tasty","price":-5,"image_url":"u"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Dish must have a price that is an integer greater than 0", decodeProblem(t, w).Message)

	w = do(router, http.MethodPost, "/dishes", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Dish must include a name", decodeProblem(t, w).Message)

	w = do(router, http.MethodPost, "/dishes", `{"data":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Request body must be valid JSON", decodeProblem(t, w).Message)

	w = do(router, http.MethodGet, "/dishes/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	p := decodeProblem(t, w)
	assert.Equal(t, "Dish does not exist: nope", p.Message)
	assert.Equal(t, "/dishes/nope", p.Instance)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/dishes", pasta).Code)
	w = do(router, http.MethodPut, "/dishes/dish-1", `{"data":{"id":"dish-9","name":"Soup","description":"Warm","price":7,"image_url":"v"}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Dish id does not match route id. Dish: dish-9, Route: dish-1", decodeProblem(t, w).Message)
}

func TestOrders_Lifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/orders", `{"data":{"deliverTo":"A","mobileNumber":"1","dishes":[{"dishId":"x","quantity":2}]}}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":"order-1","deliverTo":"A","mobileNumber":"1","dishes":[{"dishId":"x","quantity":2}]}}`, w.Body.String())

	update := func(status string) *httptest.ResponseRecorder {
		return do(router, http.MethodPut, "/orders/order-1",
			`{"data":{"deliverTo":"A","mobileNumber":"1","status":"`+status+`","dishes":[{"dishId":"x","quantity":2}]}}`)
	}

	w = update("delivered")
	require.Equal(t, http.StatusOK, w.Code)
	var order map[string]any
	decodeData(t, w, &order)
	assert.Equal(t, "delivered", order["status"])

	w = update("pending")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A delivered order cannot be changed", decodeProblem(t, w).Message)

	w = do(router, http.MethodDelete, "/orders/order-1", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "An order cannot be deleted unless it is pending.", decodeProblem(t, w).Message)
}

func TestOrders_DeletePending(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/orders", `{"data":{"deliverTo":"A","mobileNumber":"1","dishes":[{"quantity":1}]}}`).Code)
	require.Equal(t, http.StatusOK, do(router, http.MethodPut, "/orders/order-1", `{"data":{"deliverTo":"A","mobileNumber":"1","status":"pending","dishes":[{"quantity":1}]}}`).Code)

	w := do(router, http.MethodDelete, "/orders/order-1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(router, http.MethodGet, "/orders/order-1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order does not exist: order-1", decodeProblem(t, w).Message)
}

func TestOrders_CreateRejectsEmptyDishes(t *testing.T) {
	router := newTestRouter(t)
	w := do(router, http.MethodPost, "/orders", `{"data":{"deliverTo":"A","mobileNumber":"1","dishes":[]}}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order must include at least one dish", decodeProblem(t, w).Message)

	w = do(router, http.MethodGet, "/orders", "")
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestRouter_UnknownPathAndMethod(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Path not found: /menu", decodeProblem(t, w).Message)

	w = do(router, http.MethodDelete, "/dishes/dish-1", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "DELETE not allowed for /dishes/dish-1", decodeProblem(t, w).Message)

	w = do(router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRouter_PercentEncodedIDsAreLookedUpDecoded(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/orders/a%25b", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order does not exist: a%b", decodeProblem(t, w).Message)

	w = do(router, http.MethodGet, "/dishes/50%25%20off", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dish does not exist: 50% off", decodeProblem(t, w).Message)
}
