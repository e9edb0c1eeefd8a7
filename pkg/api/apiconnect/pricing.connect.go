package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/pkg/api"
)

// PricingServiceName is the fully-qualified name of the PricingService service.
const PricingServiceName = Package + ".PricingService"

// Procedure paths of PricingService.
const (
	PricingServiceCreateProductProcedure    = "/" + PricingServiceName + "/CreateProduct"
	PricingServiceGetProductProcedure       = "/" + PricingServiceName + "/GetProduct"
	PricingServiceListProductsProcedure     = "/" + PricingServiceName + "/ListProducts"
	PricingServiceDeleteProductProcedure    = "/" + PricingServiceName + "/DeleteProduct"
	PricingServiceAddRoleProcedure          = "/" + PricingServiceName + "/AddRole"
	PricingServiceDeleteRoleProcedure       = "/" + PricingServiceName + "/DeleteRole"
	PricingServiceSetRolePercentProcedure   = "/" + PricingServiceName + "/SetRolePercent"
	PricingServiceUpdateDiscountProcedure   = "/" + PricingServiceName + "/UpdateDiscount"
	PricingServiceUpdateCommissionProcedure = "/" + PricingServiceName + "/UpdateCommission"
	PricingServiceDispatchProcedure         = "/" + PricingServiceName + "/Dispatch"
	PricingServiceGetChartProcedure         = "/" + PricingServiceName + "/GetChart"
)

// PricingServiceClient is a client for the pricewise.v1.PricingService service.
type PricingServiceClient interface {
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error)
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
	AddRole(context.Context, *connect.Request[api.AddRoleRequest]) (*connect.Response[api.AddRoleResponse], error)
	DeleteRole(context.Context, *connect.Request[api.DeleteRoleRequest]) (*connect.Response[api.DeleteRoleResponse], error)
	SetRolePercent(context.Context, *connect.Request[api.SetRolePercentRequest]) (*connect.Response[api.SetRolePercentResponse], error)
	UpdateDiscount(context.Context, *connect.Request[api.UpdateDiscountRequest]) (*connect.Response[api.UpdateDiscountResponse], error)
	UpdateCommission(context.Context, *connect.Request[api.UpdateCommissionRequest]) (*connect.Response[api.UpdateCommissionResponse], error)
	Dispatch(context.Context, *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error)
	GetChart(context.Context, *connect.Request[api.GetChartRequest]) (*connect.Response[api.GetChartResponse], error)
}

// NewPricingServiceClient constructs a client for the pricewise.v1.PricingService
// service. baseURL is the scheme and host, e.g. http://localhost:8080.
func NewPricingServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PricingServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &pricingServiceClient{
		createProduct:    connect.NewClient[api.CreateProductRequest, api.CreateProductResponse](httpClient, baseURL+PricingServiceCreateProductProcedure, opts...),
		getProduct:       connect.NewClient[api.GetProductRequest, api.GetProductResponse](httpClient, baseURL+PricingServiceGetProductProcedure, opts...),
		listProducts:     connect.NewClient[api.ListProductsRequest, api.ListProductsResponse](httpClient, baseURL+PricingServiceListProductsProcedure, opts...),
		deleteProduct:    connect.NewClient[api.DeleteProductRequest, api.DeleteProductResponse](httpClient, baseURL+PricingServiceDeleteProductProcedure, opts...),
		addRole:          connect.NewClient[api.AddRoleRequest, api.AddRoleResponse](httpClient, baseURL+PricingServiceAddRoleProcedure, opts...),
		deleteRole:       connect.NewClient[api.DeleteRoleRequest, api.DeleteRoleResponse](httpClient, baseURL+PricingServiceDeleteRoleProcedure, opts...),
		setRolePercent:   connect.NewClient[api.SetRolePercentRequest, api.SetRolePercentResponse](httpClient, baseURL+PricingServiceSetRolePercentProcedure, opts...),
		updateDiscount:   connect.NewClient[api.UpdateDiscountRequest, api.UpdateDiscountResponse](httpClient, baseURL+PricingServiceUpdateDiscountProcedure, opts...),
		updateCommission: connect.NewClient[api.UpdateCommissionRequest, api.UpdateCommissionResponse](httpClient, baseURL+PricingServiceUpdateCommissionProcedure, opts...),
		dispatch:         connect.NewClient[api.DispatchRequest, api.DispatchResponse](httpClient, baseURL+PricingServiceDispatchProcedure, opts...),
		getChart:         connect.NewClient[api.GetChartRequest, api.GetChartResponse](httpClient, baseURL+PricingServiceGetChartProcedure, opts...),
	}
}

type pricingServiceClient struct {
	createProduct    *connect.Client[api.CreateProductRequest, api.CreateProductResponse]
	getProduct       *connect.Client[api.GetProductRequest, api.GetProductResponse]
	listProducts     *connect.Client[api.ListProductsRequest, api.ListProductsResponse]
	deleteProduct    *connect.Client[api.DeleteProductRequest, api.DeleteProductResponse]
	addRole          *connect.Client[api.AddRoleRequest, api.AddRoleResponse]
	deleteRole       *connect.Client[api.DeleteRoleRequest, api.DeleteRoleResponse]
	setRolePercent   *connect.Client[api.SetRolePercentRequest, api.SetRolePercentResponse]
	updateDiscount   *connect.Client[api.UpdateDiscountRequest, api.UpdateDiscountResponse]
	updateCommission *connect.Client[api.UpdateCommissionRequest, api.UpdateCommissionResponse]
	dispatch         *connect.Client[api.DispatchRequest, api.DispatchResponse]
	getChart         *connect.Client[api.GetChartRequest, api.GetChartResponse]
}

func (c *pricingServiceClient) CreateProduct(ctx context.Context, req *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return c.createProduct.CallUnary(ctx, req)
}

func (c *pricingServiceClient) GetProduct(ctx context.Context, req *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	return c.getProduct.CallUnary(ctx, req)
}

func (c *pricingServiceClient) ListProducts(ctx context.Context, req *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return c.listProducts.CallUnary(ctx, req)
}

func (c *pricingServiceClient) DeleteProduct(ctx context.Context, req *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return c.deleteProduct.CallUnary(ctx, req)
}

func (c *pricingServiceClient) AddRole(ctx context.Context, req *connect.Request[api.AddRoleRequest]) (*connect.Response[api.AddRoleResponse], error) {
	return c.addRole.CallUnary(ctx, req)
}

func (c *pricingServiceClient) DeleteRole(ctx context.Context, req *connect.Request[api.DeleteRoleRequest]) (*connect.Response[api.DeleteRoleResponse], error) {
	return c.deleteRole.CallUnary(ctx, req)
}

func (c *pricingServiceClient) SetRolePercent(ctx context.Context, req *connect.Request[api.SetRolePercentRequest]) (*connect.Response[api.SetRolePercentResponse], error) {
	return c.setRolePercent.CallUnary(ctx, req)
}

func (c *pricingServiceClient) UpdateDiscount(ctx context.Context, req *connect.Request[api.UpdateDiscountRequest]) (*connect.Response[api.UpdateDiscountResponse], error) {
	return c.updateDiscount.CallUnary(ctx, req)
}

func (c *pricingServiceClient) UpdateCommission(ctx context.Context, req *connect.Request[api.UpdateCommissionRequest]) (*connect.Response[api.UpdateCommissionResponse], error) {
	return c.updateCommission.CallUnary(ctx, req)
}

func (c *pricingServiceClient) Dispatch(ctx context.Context, req *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error) {
	return c.dispatch.CallUnary(ctx, req)
}

func (c *pricingServiceClient) GetChart(ctx context.Context, req *connect.Request[api.GetChartRequest]) (*connect.Response[api.GetChartResponse], error) {
	return c.getChart.CallUnary(ctx, req)
}

// PricingServiceHandler is an implementation of the pricewise.v1.PricingService service.
type PricingServiceHandler interface {
	CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error)
	GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error)
	ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error)
	DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error)
	AddRole(context.Context, *connect.Request[api.AddRoleRequest]) (*connect.Response[api.AddRoleResponse], error)
	DeleteRole(context.Context, *connect.Request[api.DeleteRoleRequest]) (*connect.Response[api.DeleteRoleResponse], error)
	SetRolePercent(context.Context, *connect.Request[api.SetRolePercentRequest]) (*connect.Response[api.SetRolePercentResponse], error)
	UpdateDiscount(context.Context, *connect.Request[api.UpdateDiscountRequest]) (*connect.Response[api.UpdateDiscountResponse], error)
	UpdateCommission(context.Context, *connect.Request[api.UpdateCommissionRequest]) (*connect.Response[api.UpdateCommissionResponse], error)
	Dispatch(context.Context, *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error)
	GetChart(context.Context, *connect.Request[api.GetChartRequest]) (*connect.Response[api.GetChartResponse], error)
}

// NewPricingServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewPricingServiceHandler(svc PricingServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		PricingServiceCreateProductProcedure:    connect.NewUnaryHandler(PricingServiceCreateProductProcedure, svc.CreateProduct, opts...),
		PricingServiceGetProductProcedure:       connect.NewUnaryHandler(PricingServiceGetProductProcedure, svc.GetProduct, opts...),
		PricingServiceListProductsProcedure:     connect.NewUnaryHandler(PricingServiceListProductsProcedure, svc.ListProducts, opts...),
		PricingServiceDeleteProductProcedure:    connect.NewUnaryHandler(PricingServiceDeleteProductProcedure, svc.DeleteProduct, opts...),
		PricingServiceAddRoleProcedure:          connect.NewUnaryHandler(PricingServiceAddRoleProcedure, svc.AddRole, opts...),
		PricingServiceDeleteRoleProcedure:       connect.NewUnaryHandler(PricingServiceDeleteRoleProcedure, svc.DeleteRole, opts...),
		PricingServiceSetRolePercentProcedure:   connect.NewUnaryHandler(PricingServiceSetRolePercentProcedure, svc.SetRolePercent, opts...),
		PricingServiceUpdateDiscountProcedure:   connect.NewUnaryHandler(PricingServiceUpdateDiscountProcedure, svc.UpdateDiscount, opts...),
		PricingServiceUpdateCommissionProcedure: connect.NewUnaryHandler(PricingServiceUpdateCommissionProcedure, svc.UpdateCommission, opts...),
		PricingServiceDispatchProcedure:         connect.NewUnaryHandler(PricingServiceDispatchProcedure, svc.Dispatch, opts...),
		PricingServiceGetChartProcedure:         connect.NewUnaryHandler(PricingServiceGetChartProcedure, svc.GetChart, opts...),
	}
	return "/" + PricingServiceName + "/", route(routes)
}

// UnimplementedPricingServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPricingServiceHandler struct{}

func (UnimplementedPricingServiceHandler) CreateProduct(context.Context, *connect.Request[api.CreateProductRequest]) (*connect.Response[api.CreateProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.CreateProduct is not implemented"))
}

func (UnimplementedPricingServiceHandler) GetProduct(context.Context, *connect.Request[api.GetProductRequest]) (*connect.Response[api.GetProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.GetProduct is not implemented"))
}

func (UnimplementedPricingServiceHandler) ListProducts(context.Context, *connect.Request[api.ListProductsRequest]) (*connect.Response[api.ListProductsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.ListProducts is not implemented"))
}

func (UnimplementedPricingServiceHandler) DeleteProduct(context.Context, *connect.Request[api.DeleteProductRequest]) (*connect.Response[api.DeleteProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.DeleteProduct is not implemented"))
}

func (UnimplementedPricingServiceHandler) AddRole(context.Context, *connect.Request[api.AddRoleRequest]) (*connect.Response[api.AddRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.AddRole is not implemented"))
}

func (UnimplementedPricingServiceHandler) DeleteRole(context.Context, *connect.Request[api.DeleteRoleRequest]) (*connect.Response[api.DeleteRoleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.DeleteRole is not implemented"))
}

func (UnimplementedPricingServiceHandler) SetRolePercent(context.Context, *connect.Request[api.SetRolePercentRequest]) (*connect.Response[api.SetRolePercentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.SetRolePercent is not implemented"))
}

func (UnimplementedPricingServiceHandler) UpdateDiscount(context.Context, *connect.Request[api.UpdateDiscountRequest]) (*connect.Response[api.UpdateDiscountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.UpdateDiscount is not implemented"))
}

func (UnimplementedPricingServiceHandler) UpdateCommission(context.Context, *connect.Request[api.UpdateCommissionRequest]) (*connect.Response[api.UpdateCommissionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.UpdateCommission is not implemented"))
}

func (UnimplementedPricingServiceHandler) Dispatch(context.Context, *connect.Request[api.DispatchRequest]) (*connect.Response[api.DispatchResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.Dispatch is not implemented"))
}

func (UnimplementedPricingServiceHandler) GetChart(context.Context, *connect.Request[api.GetChartRequest]) (*connect.Response[api.GetChartResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.PricingService.GetChart is not implemented"))
}
