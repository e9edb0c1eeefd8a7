package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/internal/storage/memory"
)

var baseRoleIDs = []string{"studio", "smm", "developer", "designer", "manager"}

type recorder struct {
	events []Event
}

func (r *recorder) ProductEvent(_ context.Context, e Event) {
	r.events = append(r.events, e)
}

func newTestEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := New(memory.New(), rec)
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
	e.now = func() time.Time { return time.Unix(1700000000, 0) }
	return e, rec
}

func roleIDs(b *models.Breakdown) []string {
	ids := make([]string, len(b.Allocations))
	for i, a := range b.Allocations {
		ids[i] = a.Role.ID
	}
	return ids
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t)

	b, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
	require.NoError(t, err)

	assert.Equal(t, "p1", b.Product.ID)
	assert.Equal(t, int64(1700000000), b.Product.CreatedAt)
	assert.Equal(t, 700.0, b.FinalPrice)
	assert.Equal(t, 70.0, b.AvailablePercent)
	assert.Equal(t, 70.0, b.RemainingPercent)
	assert.Equal(t, baseRoleIDs, roleIDs(b))
	for _, a := range b.Allocations {
		assert.Zero(t, a.Role.Percent)
		assert.True(t, a.Base)
	}

	require.Len(t, rec.events, 1)
	assert.Equal(t, EventCreated, rec.events[0].Kind)
	assert.Equal(t, "p1", rec.events[0].ProductID)
}

func TestCreateProduct_ClampsInputs(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	b, err := e.CreateProduct(ctx, "Clamped", -100, 150, -5)
	require.NoError(t, err)

	assert.Zero(t, b.Product.Price)
	assert.Equal(t, 100.0, b.Product.Discount)
	assert.Zero(t, b.Product.Commission)
}

func TestCreateProduct_AllowsOverDeduction(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	b, err := e.CreateProduct(ctx, "Over", 500, 60, 50)
	require.NoError(t, err)

	assert.Equal(t, -10.0, b.AvailablePercent)
	assert.Equal(t, -50.0, b.FinalPrice)

	for _, id := range baseRoleIDs {
		b, err = e.SetRolePercent(ctx, "p1", id, 25)
		require.NoError(t, err)
	}
	for _, a := range b.Allocations {
		assert.Zero(t, a.Role.Percent, "role %s should clamp to 0", a.Role.ID)
	}
}

func TestSetRolePercent(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
	require.NoError(t, err)

	b, err := e.SetRolePercent(ctx, "p1", "developer", 30)
	require.NoError(t, err)

	dev := b.Allocations[2]
	assert.Equal(t, 30.0, dev.Role.Percent)
	assert.Equal(t, 210.0, dev.Amount)
	assert.Equal(t, 40.0, b.RemainingPercent)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, EventUpdated, last.Kind)
	assert.Equal(t, 30.0, last.Breakdown.Allocations[2].Role.Percent)
}

func TestSetRolePercent_Clamps(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{name: "negative", raw: -20, want: 0},
		{name: "huge", raw: 1e9, want: 70},
		{name: "exact ceiling", raw: 70, want: 70},
		{name: "rounded", raw: 33.333, want: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			_, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
			require.NoError(t, err)

			b, err := e.SetRolePercent(ctx, "p1", "studio", tt.raw)
			require.NoError(t, err)
			got := b.Allocations[0].Role.Percent
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, b.AvailablePercent)
		})
	}
}

func TestSetRolePercent_IndependentClampsCanOverAllocate(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
	require.NoError(t, err)

	_, err = e.SetRolePercent(ctx, "p1", "studio", 60)
	require.NoError(t, err)
	b, err := e.SetRolePercent(ctx, "p1", "smm", 50)
	require.NoError(t, err)

	// Each role stays under the 70% ceiling, the sum doesn't.
	assert.Equal(t, 60.0, b.Allocations[0].Role.Percent)
	assert.Equal(t, 50.0, b.Allocations[1].Role.Percent)
	assert.Equal(t, -40.0, b.RemainingPercent)
	assert.True(t, b.OverAllocated)
}

func TestSetRolePercent_Errors(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)
	before := len(rec.events)

	_, err = e.SetRolePercent(ctx, "p1", "nope", 10)
	assert.ErrorIs(t, err, ErrRoleNotFound)

	_, err = e.SetRolePercent(ctx, "missing", "studio", 10)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.Len(t, rec.events, before, "failed mutations must not notify")
}

func TestUpdateDiscountAndCommission(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)

	_, err = e.SetRolePercent(ctx, "p1", "developer", 80)
	require.NoError(t, err)

	b, err := e.UpdateDiscount(ctx, "p1", 20)
	require.NoError(t, err)
	assert.Equal(t, 80.0, b.AvailablePercent)
	assert.Equal(t, 800.0, b.FinalPrice)
	assert.Zero(t, b.RemainingPercent)

	b, err = e.UpdateCommission(ctx, "p1", 130)
	require.NoError(t, err)
	assert.Equal(t, 100.0, b.Product.Commission)
	assert.Equal(t, -20.0, b.AvailablePercent)
	assert.Equal(t, -200.0, b.FinalPrice)

	// Existing percents are not re-clamped; remaining signals the problem.
	assert.Equal(t, 80.0, b.Allocations[2].Role.Percent)
	assert.Equal(t, -100.0, b.RemainingPercent)
	assert.Equal(t, -160.0, b.Allocations[2].Amount)

	b, err = e.UpdateCommission(ctx, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 75.0, b.AvailablePercent)

	b, err = e.UpdateDiscount(ctx, "p1", -1)
	require.NoError(t, err)
	assert.Zero(t, b.Product.Discount)
	assert.Equal(t, 95.0, b.AvailablePercent)

	_, err = e.UpdateDiscount(ctx, "missing", 5)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddRole(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)

	_, err = e.SetRolePercent(ctx, "p1", "studio", 40)
	require.NoError(t, err)

	role, err := e.AddRole(ctx, "p1", "Video Editor")
	require.NoError(t, err)
	assert.Equal(t, "video-editor", role.ID)
	assert.Equal(t, "Video Editor", role.Name)
	assert.Zero(t, role.Percent)

	b, err := e.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, append(append([]string{}, baseRoleIDs...), "video-editor"), roleIDs(b))
	assert.Equal(t, 40.0, b.Allocations[0].Role.Percent, "existing percents are not renormalized")
	assert.False(t, b.Allocations[5].Base)
}

func TestAddRole_DuplicateIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)

	_, err = e.AddRole(ctx, "p1", "Video Editor")
	require.NoError(t, err)
	before, err := e.Product(ctx, "p1")
	require.NoError(t, err)

	for _, name := range []string{"video editor", "VIDEO   EDITOR", "Developer"} {
		_, err = e.AddRole(ctx, "p1", name)
		assert.ErrorIs(t, err, ErrDuplicateRole, name)
	}

	after, err := e.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, roleIDs(before), roleIDs(after))
}

func TestAddRole_Errors(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 0, 0)
	require.NoError(t, err)

	_, err = e.AddRole(ctx, "p1", "")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = e.AddRole(ctx, "p1", "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = e.AddRole(ctx, "missing", "Editor")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteRole(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	_, err := e.CreateProduct(ctx, "Landing", 1000, 20, 10)
	require.NoError(t, err)
	_, err = e.AddRole(ctx, "p1", "Video Editor")
	require.NoError(t, err)
	_, err = e.SetRolePercent(ctx, "p1", "video-editor", 25)
	require.NoError(t, err)

	require.NoError(t, e.DeleteRole(ctx, "p1", "video-editor"))

	b, err := e.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, baseRoleIDs, roleIDs(b))
	// The freed percent simply returns to remaining.
	assert.Equal(t, 70.0, b.RemainingPercent)

	assert.ErrorIs(t, e.DeleteRole(ctx, "p1", "video-editor"), ErrRoleNotFound)
	assert.ErrorIs(t, e.DeleteRole(ctx, "missing", "video-editor"), ErrProductNotFound)
}

func TestDeleteRole_BaseRolesAreProtected(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)
	for i := 0; i < 3; i++ {
		_, err := e.CreateProduct(ctx, fmt.Sprintf("Product %d", i), 100, 0, 0)
		require.NoError(t, err)
	}

	for _, pid := range []string{"p1", "p2", "p3", "missing"} {
		for _, rid := range baseRoleIDs {
			assert.ErrorIs(t, e.DeleteRole(ctx, pid, rid), ErrProtectedRole, "%s/%s", pid, rid)
		}
	}

	b, err := e.Product(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, baseRoleIDs, roleIDs(b))
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	e, rec := newTestEngine(t)
	for _, name := range []string{"A", "B", "C"} {
		_, err := e.CreateProduct(ctx, name, 100, 0, 0)
		require.NoError(t, err)
	}

	require.NoError(t, e.DeleteProduct(ctx, "p2"))

	list, err := e.Products(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].Product.ID)
	assert.Equal(t, "p3", list[1].Product.ID)

	last := rec.events[len(rec.events)-1]
	assert.Equal(t, EventDeleted, last.Kind)
	assert.Equal(t, "p2", last.ProductID)
	assert.Nil(t, last.Breakdown)

	events := len(rec.events)
	assert.NoError(t, e.DeleteProduct(ctx, "p2"), "re-deleting is a no-op")
	assert.Len(t, rec.events, events)

	_, err = e.Product(ctx, "p2")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRoleID(t *testing.T) {
	tests := map[string]string{
		"Video Editor":     "video-editor",
		"  video\teditor ": "video-editor",
		"QA":               "qa",
		"Motion  Designer": "motion-designer",
		"Монтажёр Видео":   "монтажёр-видео",
	}
	for in, want := range tests {
		assert.Equal(t, want, RoleID(in), in)
	}
}
