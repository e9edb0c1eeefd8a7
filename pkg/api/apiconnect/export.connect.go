package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/pkg/api"
)

// ExportServiceName is the fully-qualified name of the ExportService service.
const ExportServiceName = Package + ".ExportService"

// ExportServiceExportProductProcedure is the path of ExportService.ExportProduct.
const ExportServiceExportProductProcedure = "/" + ExportServiceName + "/ExportProduct"

// ExportServiceClient is a client for the pricewise.v1.ExportService service.
type ExportServiceClient interface {
	ExportProduct(context.Context, *connect.Request[api.ExportProductRequest]) (*connect.Response[api.ExportProductResponse], error)
}

// NewExportServiceClient constructs a client for the pricewise.v1.ExportService service.
func NewExportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExportServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &exportServiceClient{
		exportProduct: connect.NewClient[api.ExportProductRequest, api.ExportProductResponse](httpClient, baseURL+ExportServiceExportProductProcedure, clientOptions(opts)...),
	}
}

type exportServiceClient struct {
	exportProduct *connect.Client[api.ExportProductRequest, api.ExportProductResponse]
}

func (c *exportServiceClient) ExportProduct(ctx context.Context, req *connect.Request[api.ExportProductRequest]) (*connect.Response[api.ExportProductResponse], error) {
	return c.exportProduct.CallUnary(ctx, req)
}

// ExportServiceHandler is an implementation of the pricewise.v1.ExportService service.
type ExportServiceHandler interface {
	ExportProduct(context.Context, *connect.Request[api.ExportProductRequest]) (*connect.Response[api.ExportProductResponse], error)
}

// NewExportServiceHandler builds an HTTP handler from the service implementation.
func NewExportServiceHandler(svc ExportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ExportServiceName + "/", route(map[string]http.Handler{
		ExportServiceExportProductProcedure: connect.NewUnaryHandler(ExportServiceExportProductProcedure, svc.ExportProduct, opts...),
	})
}

// UnimplementedExportServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExportServiceHandler struct{}

func (UnimplementedExportServiceHandler) ExportProduct(context.Context, *connect.Request[api.ExportProductRequest]) (*connect.Response[api.ExportProductResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.ExportService.ExportProduct is not implemented"))
}
