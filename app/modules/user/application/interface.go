package userservice

import (
	"context"

	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
)

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	UserType    string `json:"userType"`
}

// Service defines the user operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	GetUser(ctx context.Context, userID int64) (*userdb.User, error)
	ListJudges(ctx context.Context) ([]userdb.User, error)
}
