package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)

	steps := []Command{
		{Action: ActionUpdateDiscount, ProductID: "p1", Value: 20},
		{Action: ActionUpdateCommission, ProductID: "p1", Value: 10},
		{Action: ActionAddRole, ProductID: "p1", Name: "Copywriter"},
		{Action: ActionSetRolePercent, ProductID: "p1", RoleID: "copywriter", Value: 30},
	}
	for _, cmd := range steps {
		require.NoError(t, e.Dispatch(ctx, cmd), cmd.Action)
	}

	b, err := e.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 700.0, b.FinalPrice)
	assert.Equal(t, 210.0, b.Allocations[5].Amount)

	require.NoError(t, e.Dispatch(ctx, Command{Action: ActionDeleteRole, ProductID: "p1", RoleID: "copywriter"}))
	assert.ErrorIs(t, e.Dispatch(ctx, Command{Action: ActionDeleteRole, ProductID: "p1", RoleID: "studio"}), ErrProtectedRole)

	require.NoError(t, e.Dispatch(ctx, Command{Action: ActionDeleteProduct, ProductID: "p1"}))
	list, err := e.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDispatch_UnknownAction(t *testing.T) {
	e, _ := newTestEngine(t)
	err := e.Dispatch(context.Background(), Command{Action: "drop_tables"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestActions_AllRegistered(t *testing.T) {
	e, _ := newTestEngine(t)
	for _, a := range Actions() {
		_, ok := e.handlers[a]
		assert.True(t, ok, "action %s has no handler", a)
	}
	assert.Len(t, e.handlers, len(Actions()))
}
