package service

import (
	"github.com/mmynk/pricewise/internal/chart"
	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/models"
	"github.com/mmynk/pricewise/pkg/api"
)

// toAPIProduct flattens a breakdown into the wire form renderers draw from.
func toAPIProduct(b *models.Breakdown) *api.Product {
	if b == nil {
		return nil
	}
	roles := make([]*api.Role, len(b.Allocations))
	for i, a := range b.Allocations {
		roles[i] = &api.Role{
			ID:         a.Role.ID,
			Name:       a.Role.Name,
			Percent:    a.Role.Percent,
			Amount:     a.Amount,
			MaxPercent: a.MaxPercent,
			Base:       a.Base,
		}
	}
	p := b.Product
	return &api.Product{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		Discount:         p.Discount,
		Commission:       p.Commission,
		AvailablePercent: b.AvailablePercent,
		FinalPrice:       b.FinalPrice,
		RemainingPercent: b.RemainingPercent,
		OverAllocated:    b.OverAllocated,
		ShowDiscount:     b.ShowDiscount,
		ShowCommission:   b.ShowCommission,
		Roles:            roles,
		CreatedAt:        p.CreatedAt,
	}
}

func toAPIRole(r *models.Role) *api.Role {
	return &api.Role{
		ID:      r.ID,
		Name:    r.Name,
		Percent: r.Percent,
		Base:    models.IsBaseRole(r.ID),
	}
}

func toAPIChart(h chart.Handle) *api.GetChartResponse {
	points := make([]*api.ChartPoint, len(h.Series))
	for i, p := range h.Series {
		points[i] = &api.ChartPoint{Label: p.Label, Percent: p.Percent}
	}
	return &api.GetChartResponse{
		ProductID: h.ProductID,
		AxisMax:   chart.AxisMax,
		Revision:  h.Revision,
		Points:    points,
	}
}

// EncodeEvent renders an engine event's breakdown the same way RPC responses
// do, so live renderers and RPC clients share one product shape.
func EncodeEvent(event engine.Event) any {
	return toAPIProduct(event.Breakdown)
}
