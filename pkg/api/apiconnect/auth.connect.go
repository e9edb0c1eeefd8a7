package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/pkg/api"
)

// AuthServiceName is the fully-qualified name of the AuthService service.
const AuthServiceName = Package + ".AuthService"

// Procedure paths of AuthService.
const (
	AuthServiceLoginProcedure     = "/" + AuthServiceName + "/Login"
	AuthServiceCheckAuthProcedure = "/" + AuthServiceName + "/CheckAuth"
	AuthServiceLogoutProcedure    = "/" + AuthServiceName + "/Logout"
)

// AuthServiceClient is a client for the pricewise.v1.AuthService service.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	CheckAuth(context.Context, *connect.Request[api.CheckAuthRequest]) (*connect.Response[api.CheckAuthResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceClient constructs a client for the pricewise.v1.AuthService service.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		login:     connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		checkAuth: connect.NewClient[api.CheckAuthRequest, api.CheckAuthResponse](httpClient, baseURL+AuthServiceCheckAuthProcedure, opts...),
		logout:    connect.NewClient[api.LogoutRequest, api.LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
	}
}

type authServiceClient struct {
	login     *connect.Client[api.LoginRequest, api.LoginResponse]
	checkAuth *connect.Client[api.CheckAuthRequest, api.CheckAuthResponse]
	logout    *connect.Client[api.LogoutRequest, api.LogoutResponse]
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) CheckAuth(ctx context.Context, req *connect.Request[api.CheckAuthRequest]) (*connect.Response[api.CheckAuthResponse], error) {
	return c.checkAuth.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the pricewise.v1.AuthService service.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	CheckAuth(context.Context, *connect.Request[api.CheckAuthRequest]) (*connect.Response[api.CheckAuthResponse], error)
	Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", route(map[string]http.Handler{
		AuthServiceLoginProcedure:     connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceCheckAuthProcedure: connect.NewUnaryHandler(AuthServiceCheckAuthProcedure, svc.CheckAuth, opts...),
		AuthServiceLogoutProcedure:    connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...),
	})
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) CheckAuth(context.Context, *connect.Request[api.CheckAuthRequest]) (*connect.Response[api.CheckAuthResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.AuthService.CheckAuth is not implemented"))
}

func (UnimplementedAuthServiceHandler) Logout(context.Context, *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("pricewise.v1.AuthService.Logout is not implemented"))
}
