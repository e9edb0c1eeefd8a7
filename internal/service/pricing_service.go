package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/internal/chart"
	"github.com/mmynk/pricewise/internal/engine"
	"github.com/mmynk/pricewise/internal/export"
	"github.com/mmynk/pricewise/pkg/api"
	"github.com/mmynk/pricewise/pkg/api/apiconnect"
)

// ChartLookup reads the live chart of a product.
type ChartLookup interface {
	Lookup(productID string) (chart.Handle, bool)
}

// PricingService implements the Connect PricingService on top of the engine.
type PricingService struct {
	apiconnect.UnimplementedPricingServiceHandler
	engine *engine.Engine
	charts ChartLookup
}

// NewPricingService creates a PricingService. charts serves GetChart.
func NewPricingService(eng *engine.Engine, charts ChartLookup) *PricingService {
	return &PricingService{engine: eng, charts: charts}
}

// CreateProduct adds a product with the base roles.
func (s *PricingService) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.engine.CreateProduct(ctx, req.Msg.Name, req.Msg.Price, req.Msg.Discount, req.Msg.Commission)
	if err != nil {
		return nil, toConnectError("CreateProduct", err)
	}
	return connect.NewResponse(&api.CreateProductResponse{Product: toAPIProduct(b)}), nil
}

// GetProduct returns one product with its derived values.
func (s *PricingService) GetProduct(ctx context.Context, req *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.engine.Product(ctx, req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError("GetProduct", err)
	}
	return connect.NewResponse(&api.GetProductResponse{Product: toAPIProduct(b)}), nil
}

// ListProducts returns every product in creation order.
func (s *PricingService) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	breakdowns, err := s.engine.Products(ctx)
	if err != nil {
		return nil, toConnectError("ListProducts", err)
	}

	products := make([]*api.Product, len(breakdowns))
	for i, b := range breakdowns {
		products[i] = toAPIProduct(b)
	}
	slog.Debug("ListProducts", "count", len(products))
	return connect.NewResponse(&api.ListProductsResponse{Products: products}), nil
}

// DeleteProduct removes a product; unknown IDs succeed.
func (s *PricingService) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.engine.DeleteProduct(ctx, req.Msg.ProductID); err != nil {
		return nil, toConnectError("DeleteProduct", err)
	}
	return connect.NewResponse(&api.DeleteProductResponse{}), nil
}

// AddRole appends a custom role at 0%.
func (s *PricingService) AddRole(ctx context.Context, req *connect.Request[api.AddRoleRequest]) (*connect.Response[api.AddRoleResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	role, err := s.engine.AddRole(ctx, req.Msg.ProductID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError("AddRole", err)
	}
	b, err := s.engine.Product(ctx, req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError("AddRole", err)
	}
	return connect.NewResponse(&api.AddRoleResponse{
		Role:    toAPIRole(role),
		Product: toAPIProduct(b),
	}), nil
}

// DeleteRole removes a custom role.
func (s *PricingService) DeleteRole(ctx context.Context, req *connect.Request[api.DeleteRoleRequest]) (*connect.Response[api.DeleteRoleResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.engine.DeleteRole(ctx, req.Msg.ProductID, req.Msg.RoleID); err != nil {
		return nil, toConnectError("DeleteRole", err)
	}
	b, err := s.engine.Product(ctx, req.Msg.ProductID)
	if err != nil {
		return nil, toConnectError("DeleteRole", err)
	}
	return connect.NewResponse(&api.DeleteRoleResponse{Product: toAPIProduct(b)}), nil
}

// SetRolePercent stores a clamped percentage for one role.
func (s *PricingService) SetRolePercent(ctx context.Context, req *connect.Request[api.SetRolePercentRequest]) (*connect.Response[api.SetRolePercentResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.engine.SetRolePercent(ctx, req.Msg.ProductID, req.Msg.RoleID, req.Msg.Percent)
	if err != nil {
		return nil, toConnectError("SetRolePercent", err)
	}
	return connect.NewResponse(&api.SetRolePercentResponse{Product: toAPIProduct(b)}), nil
}

// UpdateDiscount changes a product's discount.
func (s *PricingService) UpdateDiscount(ctx context.Context, req *connect.Request[api.UpdateDiscountRequest]) (*connect.Response[api.UpdateDiscountResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.engine.UpdateDiscount(ctx, req.Msg.ProductID, req.Msg.Discount)
	if err != nil {
		return nil, toConnectError("UpdateDiscount", err)
	}
	return connect.NewResponse(&api.UpdateDiscountResponse{Product: toAPIProduct(b)}), nil
}

// UpdateCommission changes a product's commission.
func (s *PricingService) UpdateCommission(ctx context.Context, req *connect.Request[api.UpdateCommissionRequest]) (*connect.Response[api.UpdateCommissionResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	b, err := s.engine.UpdateCommission(ctx, req.Msg.ProductID, req.Msg.Commission)
	if err != nil {
		return nil, toConnectError("UpdateCommission", err)
	}
	return connect.NewResponse(&api.UpdateCommissionResponse{Product: toAPIProduct(b)}), nil
}

// Dispatch runs a named action from the engine's command table and returns
// the product afterwards. The product is omitted after delete_product.
func (s *PricingService) Dispatch(ctx context.Context, req *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	cmd := engine.Command{
		Action:    engine.Action(req.Msg.Action),
		ProductID: req.Msg.ProductID,
		RoleID:    req.Msg.RoleID,
		Name:      req.Msg.Name,
		Value:     req.Msg.Value,
	}
	if err := s.engine.Dispatch(ctx, cmd); err != nil {
		return nil, toConnectError("Dispatch", err)
	}
	slog.Debug("Dispatched", "action", cmd.Action, "product_id", cmd.ProductID)

	if cmd.Action == engine.ActionDeleteProduct {
		return connect.NewResponse(&api.DispatchResponse{}), nil
	}
	b, err := s.engine.Product(ctx, cmd.ProductID)
	if err != nil {
		return nil, toConnectError("Dispatch", err)
	}
	return connect.NewResponse(&api.DispatchResponse{Product: toAPIProduct(b)}), nil
}

// GetChart returns the chart dataset currently drawn for a product.
func (s *PricingService) GetChart(ctx context.Context, req *connect.Request[api.GetChartRequest]) (*connect.Response[api.GetChartResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	h, ok := s.charts.Lookup(req.Msg.ProductID)
	if !ok {
		return nil, toConnectError("GetChart", fmt.Errorf("%w: %s", export.ErrChartNotFound, req.Msg.ProductID))
	}
	return connect.NewResponse(toAPIChart(h)), nil
}
