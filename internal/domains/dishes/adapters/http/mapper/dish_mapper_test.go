package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dishdomain "github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
)

func TestFromDomainDish_WireNames(t *testing.T) {
	raw, err := json.Marshal(FromDomainDish(&dishdomain.Dish{ID: "1", Name: "Pasta", Description: "Tasty", Price: 12, ImageURL: "u"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"Pasta","description":"Tasty","price":12,"image_url":"u"}`, string(raw))
}

func TestToDomainDish_EnforcesInvariants(t *testing.T) {
	_, err := ToDomainDish(Dish{ID: "1", Name: "Pasta", Description: "Tasty", Price: 0, ImageURL: "u"})
	require.ErrorIs(t, err, dishdomain.ErrInvalidPrice)
}

func TestFromDomainDishes_EmptyIsNotNil(t *testing.T) {
	out := FromDomainDishes(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
