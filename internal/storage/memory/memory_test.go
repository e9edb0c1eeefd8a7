package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/internal/storage"
)

func product(id string) *models.Product {
	return &models.Product{ID: id, Name: "Product " + id, Price: 100, Roles: models.BaseRoles()}
}

func TestStore_KeepsInsertionOrderAcrossDeletes(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.CreateProduct(ctx, product(id)))
	}
	require.NoError(t, s.DeleteProduct(ctx, "b"))

	list, err := s.ListProducts(ctx)
	require.NoError(t, err)

	var ids []string
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)

	// Index must still resolve products that shifted left.
	got, err := s.GetProduct(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "d", got.ID)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	p := product("a")
	require.NoError(t, s.CreateProduct(ctx, p))

	p.Roles[0].Percent = 50
	got, err := s.GetProduct(ctx, "a")
	require.NoError(t, err)
	assert.Zero(t, got.Roles[0].Percent, "store must not alias the caller's roles")

	got.Roles = append(got.Roles, models.Role{ID: "x"})
	again, err := s.GetProduct(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, again.Roles, 5)
}

func TestStore_NotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.GetProduct(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
	assert.ErrorIs(t, s.UpdateProduct(ctx, product("missing")), storage.ErrNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, "missing"), storage.ErrNotFound)
}

func TestStore_RejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.CreateProduct(ctx, product("a")))
	assert.Error(t, s.CreateProduct(ctx, product("a")))
}
