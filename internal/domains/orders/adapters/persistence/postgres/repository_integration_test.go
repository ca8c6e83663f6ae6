//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/platform/postgres/postgrestest"
)

func newOrder(t *testing.T, id string) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(id, "A", "1", []domain.Line{{DishID: "x", Quantity: 2}, {DishID: "y", Quantity: 1}})
	require.NoError(t, err)
	return order
}

func TestRepository_InsertAndFindByID(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	order := newOrder(t, "o1")
	_, err := repo.Insert(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.FindByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, order, fetched)
}

func TestRepository_UpdateKeepsLines(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	order := newOrder(t, "o1")
	_, err := repo.Insert(ctx, order)
	require.NoError(t, err)

	require.NoError(t, order.Revise("B", "2", domain.StatusPreparing))
	order.Dishes = []domain.Line{{DishID: "z", Quantity: 9}}
	updated, err := repo.Update(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)
	assert.Equal(t, "B", updated.DeliverTo)
	assert.Equal(t, newOrder(t, "o1").Dishes, updated.Dishes)
}

func TestRepository_DeleteAndListOrder(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		_, err := repo.Insert(ctx, newOrder(t, id))
		require.NoError(t, err)
	}
	require.NoError(t, repo.Delete(ctx, "a"))
	assert.ErrorIs(t, repo.Delete(ctx, "a"), ports.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}
