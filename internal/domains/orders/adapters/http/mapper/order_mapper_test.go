package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
)

func TestFromDomainOrder_OmitsUnsetStatus(t *testing.T) {
	order, err := orderdomain.NewOrder("o1", "A", "1", []orderdomain.Line{{DishID: "x", Quantity: 2}})
	require.NoError(t, err)

	raw, err := json.Marshal(FromDomainOrder(order))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"o1","deliverTo":"A","mobileNumber":"1","dishes":[{"dishId":"x","quantity":2}]}`, string(raw))

	order.Status = orderdomain.StatusPending
	raw, err = json.Marshal(FromDomainOrder(order))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status":"pending"`)
}

func TestToDomainOrder(t *testing.T) {
	order, err := ToDomainOrder(Order{
		ID: "o1", DeliverTo: "A", MobileNumber: "1", Status: "preparing",
		Dishes: []OrderLine{{DishID: "x", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, orderdomain.StatusPreparing, order.Status)

	_, err = ToDomainOrder(Order{ID: "o1", DeliverTo: "A", MobileNumber: "1", Status: "lost", Dishes: []OrderLine{{Quantity: 1}}})
	require.ErrorIs(t, err, orderdomain.ErrInvalidStatus)
}
