//go:build integration

package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/redis/redistest"
)

func TestRepository_RoundTrip(t *testing.T) {
	repo := NewRepository(redistest.Start(t))
	ctx := context.Background()

	for _, id := range []string{"d2", "d1"} {
		dish, err := domain.NewDish(id, "Pasta", "Tasty", 12, "u")
		require.NoError(t, err)
		_, err = repo.Insert(ctx, dish)
		require.NoError(t, err)
	}

	updated, err := repo.Update(ctx, &domain.Dish{ID: "d1", Name: "Soup", Description: "Warm", Price: 7, ImageURL: "v"})
	require.NoError(t, err)
	assert.Equal(t, "Soup", updated.Name)

	found, err := repo.FindByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 7, found.Price)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "d2", list[0].ID)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
	_, err = repo.Update(ctx, &domain.Dish{ID: "missing"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
