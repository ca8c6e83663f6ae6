//go:build integration

package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/redis/redistest"
)

func TestRepository_Lifecycle(t *testing.T) {
	repo := NewRepository(redistest.Start(t))
	ctx := context.Background()

	for _, id := range []string{"o2", "o1", "o3"} {
		order, err := domain.NewOrder(id, "A", "1", []domain.Line{{DishID: "x", Quantity: 2}})
		require.NoError(t, err)
		_, err = repo.Insert(ctx, order)
		require.NoError(t, err)
	}

	changed := &domain.Order{ID: "o1", DeliverTo: "B", MobileNumber: "2", Status: domain.StatusPending}
	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, []domain.Line{{DishID: "x", Quantity: 2}}, updated.Dishes)
	assert.Equal(t, domain.StatusPending, updated.Status)

	require.NoError(t, repo.Delete(ctx, "o1"))
	assert.ErrorIs(t, repo.Delete(ctx, "o1"), ports.ErrNotFound)
	_, err = repo.FindByID(ctx, "o1")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o2", list[0].ID)
	assert.Equal(t, "o3", list[1].ID)
}
