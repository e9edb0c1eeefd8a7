package models

// Role is one share of a product's distributable budget.
type Role struct {
	// ID is unique within a product. Base roles have fixed IDs; custom
	// role IDs are derived from the name (lowercase, whitespace → "-").
	ID string

	// Name is the display label.
	Name string

	// Percent is the share of the distributable budget, rounded to 2 places.
	Percent float64
}

// Product is a priced item whose remaining budget is distributed among roles.
type Product struct {
	// ID is the unique identifier for the product (UUID format).
	ID string

	// Name is the display name, set at creation.
	Name string

	// Price is the base price (the 100% reference value). Never negative.
	Price float64

	// Discount is a percentage in [0, 100].
	Discount float64

	// Commission is a percentage in [0, 100].
	// Discount + Commission may exceed 100; nothing rejects that.
	Commission float64

	// Roles are ordered base roles first, then custom roles in add order.
	Roles []Role

	// CreatedAt is the Unix timestamp when the product was created.
	CreatedAt int64
}

// Clone returns a deep copy so callers can't alias a stored role slice.
func (p *Product) Clone() *Product {
	c := *p
	c.Roles = append([]Role(nil), p.Roles...)
	return &c
}

// RoleIndex returns the position of the role with the given ID, or -1.
func (p *Product) RoleIndex(roleID string) int {
	for i, r := range p.Roles {
		if r.ID == roleID {
			return i
		}
	}
	return -1
}

// Allocation is one role's row in a Breakdown.
type Allocation struct {
	Role Role

	// Amount is the role's payout: FinalPrice × Percent / 100, rounded to 2 places.
	Amount float64

	// MaxPercent is the upper bound an editor should offer for this role.
	MaxPercent float64

	// Base is true for the fixed, non-removable roles.
	Base bool
}

// Breakdown is a Product with all of its derived values.
// This is the snapshot handed to renderers, charts and exporters.
type Breakdown struct {
	Product Product

	// AvailablePercent is 100 − (Discount + Commission). May be negative.
	AvailablePercent float64

	// FinalPrice is Price × (1 − (Discount + Commission)/100), rounded to 2 places.
	// May be negative when Discount + Commission > 100.
	FinalPrice float64

	// RemainingPercent is AvailablePercent minus the sum of all role percents.
	RemainingPercent float64

	// OverAllocated is true when RemainingPercent is negative.
	OverAllocated bool

	// ShowDiscount and ShowCommission are false when the value is zero;
	// renderers omit the corresponding line.
	ShowDiscount   bool
	ShowCommission bool

	Allocations []Allocation
}
