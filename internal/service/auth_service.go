package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/pricewise/internal/auth"
	"github.com/mmynk/pricewise/internal/middleware"
	"github.com/mmynk/pricewise/pkg/api"
	"github.com/mmynk/pricewise/pkg/api/apiconnect"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	apiconnect.UnimplementedAuthServiceHandler
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login checks the shared password and returns a token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request")

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Password); err != nil {
		s.logger.Warn("Login failed", "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate()
	if err != nil {
		s.logger.Error("Failed to generate token", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Logged in successfully")
	return connect.NewResponse(&api.LoginResponse{Token: token}), nil
}

// CheckAuth reports whether a token is valid. The token comes from the
// message, or from the Authorization header when the message carries none.
func (s *AuthService) CheckAuth(ctx context.Context, req *connect.Request[api.CheckAuthRequest]) (*connect.Response[api.CheckAuthResponse], error) {
	token := req.Msg.Token
	if token == "" {
		token, _ = middleware.BearerToken(req.Header().Get("Authorization"))
	}
	if token == "" {
		return connect.NewResponse(&api.CheckAuthResponse{Authenticated: false}), nil
	}

	_, err := s.jwtManager.Validate(token)
	if err != nil {
		s.logger.Debug("CheckAuth: token rejected", "error", err)
	}
	return connect.NewResponse(&api.CheckAuthResponse{Authenticated: err == nil}), nil
}

// Logout is a no-op since tokens are stateless.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	// Logout is handled client-side by discarding the token.
	s.logger.Info("Logout request")
	return connect.NewResponse(&api.LogoutResponse{}), nil
}
