package api

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CheckAuthRequest struct {
	Token string `json:"token"`
}

type CheckAuthResponse struct {
	Authenticated bool `json:"authenticated"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}
