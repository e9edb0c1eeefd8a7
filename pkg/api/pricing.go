package api

// Role is one row of a product card.
type Role struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percent    float64 `json:"percent"`
	Amount     float64 `json:"amount"`
	MaxPercent float64 `json:"maxPercent"`
	Base       bool    `json:"base"`
}

// Product is a product with every derived display value.
type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Discount         float64 `json:"discount"`
	Commission       float64 `json:"commission"`
	AvailablePercent float64 `json:"availablePercent"`
	FinalPrice       float64 `json:"finalPrice"`
	RemainingPercent float64 `json:"remainingPercent"`
	OverAllocated    bool    `json:"overAllocated"`
	ShowDiscount     bool    `json:"showDiscount"`
	ShowCommission   bool    `json:"showCommission"`
	Roles            []*Role `json:"roles"`
	CreatedAt        int64   `json:"createdAt"`
}

type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,max=200"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	Commission float64 `json:"commission"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type GetProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type DeleteProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type DeleteProductResponse struct{}

type AddRoleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"`
}

type AddRoleResponse struct {
	Role    *Role    `json:"role"`
	Product *Product `json:"product"`
}

type DeleteRoleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	RoleID    string `json:"roleId" validate:"required"`
}

type DeleteRoleResponse struct {
	Product *Product `json:"product"`
}

type SetRolePercentRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	RoleID    string  `json:"roleId" validate:"required"`
	Percent   float64 `json:"percent"`
}

type SetRolePercentResponse struct {
	Product *Product `json:"product"`
}

type UpdateDiscountRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Discount  float64 `json:"discount"`
}

type UpdateDiscountResponse struct {
	Product *Product `json:"product"`
}

type UpdateCommissionRequest struct {
	ProductID  string  `json:"productId" validate:"required"`
	Commission float64 `json:"commission"`
}

type UpdateCommissionResponse struct {
	Product *Product `json:"product"`
}

// DispatchRequest names an action and carries its arguments as data.
// Fields an action doesn't use are ignored.
type DispatchRequest struct {
	Action    string  `json:"action" validate:"required"`
	ProductID string  `json:"productId" validate:"required"`
	RoleID    string  `json:"roleId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

// DispatchResponse carries the product after the action, or nil when the
// action deleted it.
type DispatchResponse struct {
	Product *Product `json:"product,omitempty"`
}

type GetChartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type ChartPoint struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

type GetChartResponse struct {
	ProductID string        `json:"productId"`
	AxisMax   float64       `json:"axisMax"`
	Revision  int           `json:"revision"`
	Points    []*ChartPoint `json:"points"`
}
