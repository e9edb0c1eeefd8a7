package chart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/storage/memory"
)

func TestRegistry_UpdateReplacesSeries(t *testing.T) {
	r := NewRegistry()

	r.Update("p1", []Point{{Label: "Studio", Percent: 10}, {Label: "SMM Manager", Percent: 20}})
	r.Update("p1", []Point{{Label: "Studio", Percent: 15}})

	h, ok := r.Lookup("p1")
	require.True(t, ok)
	assert.Equal(t, 2, h.Revision)
	assert.Equal(t, []Point{{Label: "Studio", Percent: 15}}, h.Series)

	// Lookup hands out copies.
	h.Series[0].Percent = 99
	again, _ := r.Lookup("p1")
	assert.Equal(t, 15.0, again.Series[0].Percent)
}

func TestRegistry_Destroy(t *testing.T) {
	r := NewRegistry()
	r.Update("p1", nil)

	assert.True(t, r.Destroy("p1"))
	assert.False(t, r.Destroy("p1"))
	_, ok := r.Lookup("p1")
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestRegistry_FollowsEngine(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()
	e := engine.New(memory.New(), r)

	b, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
	require.NoError(t, err)
	id := b.Product.ID

	h, ok := r.Lookup(id)
	require.True(t, ok)
	require.Len(t, h.Series, 5)
	assert.Equal(t, "Studio", h.Series[0].Label)

	_, err = e.SetRolePercent(ctx, id, "designer", 12.345)
	require.NoError(t, err)
	_, err = e.AddRole(ctx, id, "Video Editor")
	require.NoError(t, err)

	h, _ = r.Lookup(id)
	require.Len(t, h.Series, 6)
	assert.Equal(t, 12.35, h.Series[3].Percent)
	assert.Equal(t, Point{Label: "Video Editor", Percent: 0}, h.Series[5])
	assert.Equal(t, 3, h.Revision)

	require.NoError(t, e.DeleteProduct(ctx, id))
	_, ok = r.Lookup(id)
	assert.False(t, ok, "chart handle must be released with its product")
}
