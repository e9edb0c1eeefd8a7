// Package calculator holds the pricing and percentage-distribution math.
// Every function here is pure; the engine decides when to call them.
package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mmynk/pricewise/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds x to 2 decimal places, halves away from zero.
// The rounding is done on the decimal representation of x, so values such
// as 1.005 round to 1.01 instead of suffering binary float error.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// sanitize maps NaN to 0, mirroring a blank numeric input.
func sanitize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// ClampPrice forces a base price to be non-negative and finite.
func ClampPrice(v float64) float64 {
	if math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, sanitize(v))
}

// ClampPercent forces a discount or commission into [0, 100].
func ClampPercent(v float64) float64 {
	return math.Min(100, math.Max(0, sanitize(v)))
}

// AvailablePercent is the budget left for roles: 100 − (discount + commission).
// It is negative when discount and commission together exceed 100.
func AvailablePercent(discount, commission float64) float64 {
	return decimal.NewFromInt(100).
		Sub(decimal.NewFromFloat(discount)).
		Sub(decimal.NewFromFloat(commission)).
		InexactFloat64()
}

// FinalPrice computes price × (1 − (discount + commission)/100) rounded to
// 2 places. No floor is applied: a total deduction above 100 yields a
// negative price.
func FinalPrice(price, discount, commission float64) float64 {
	deduction := decimal.NewFromFloat(discount).Add(decimal.NewFromFloat(commission))
	multiplier := decimal.NewFromInt(1).Sub(deduction.Div(hundred))
	return decimal.NewFromFloat(price).Mul(multiplier).Round(2).InexactFloat64()
}

// RoleAmount computes finalPrice × percent / 100 rounded to 2 places.
func RoleAmount(finalPrice, percent float64) float64 {
	return decimal.NewFromFloat(finalPrice).
		Mul(decimal.NewFromFloat(percent)).
		Div(hundred).
		Round(2).
		InexactFloat64()
}

// ClampRolePercent clamps a requested role percent into [0, available] and
// rounds it to 2 places. When available is negative the range is empty and
// the result is 0.
//
// Each role is clamped against the same ceiling independently; the sum of
// all roles may still exceed available.
func ClampRolePercent(raw, available float64) float64 {
	v := sanitize(raw)
	if v > available {
		v = available
	}
	if v < 0 {
		v = 0
	}
	return Round2(v)
}

// RemainingPercent is available minus the sum of every role percent,
// rounded to 2 places. Negative means over-allocated.
func RemainingPercent(available float64, roles []models.Role) float64 {
	remaining := decimal.NewFromFloat(available)
	for _, r := range roles {
		remaining = remaining.Sub(decimal.NewFromFloat(r.Percent))
	}
	return remaining.Round(2).InexactFloat64()
}

// Summarize derives every display value of a product from scratch.
// Nothing is carried over from a previous summary.
func Summarize(p *models.Product) *models.Breakdown {
	available := AvailablePercent(p.Discount, p.Commission)
	finalPrice := FinalPrice(p.Price, p.Discount, p.Commission)
	remaining := RemainingPercent(available, p.Roles)

	allocations := make([]models.Allocation, len(p.Roles))
	for i, role := range p.Roles {
		allocations[i] = models.Allocation{
			Role:       role,
			Amount:     RoleAmount(finalPrice, role.Percent),
			MaxPercent: math.Max(0, available),
			Base:       models.IsBaseRole(role.ID),
		}
	}

	return &models.Breakdown{
		Product:          *p.Clone(),
		AvailablePercent: Round2(available),
		FinalPrice:       finalPrice,
		RemainingPercent: remaining,
		OverAllocated:    remaining < 0,
		ShowDiscount:     p.Discount != 0,
		ShowCommission:   p.Commission != 0,
		Allocations:      allocations,
	}
}
