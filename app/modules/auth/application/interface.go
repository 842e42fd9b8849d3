package authservice

import "context"

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the public profile returned on sign-in.
type LoginUser struct {
	UserID   int64  `json:"UserID"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// LoginResponse carries the bearer token and the signed-in user.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
