package services

import (
	"context"

	"github.com/sedtender/tender_portal/entities"
)

// AuthService is the service for interactions with the API's authentication endpoints
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, req entities.RegisterRequest) error
	GetCurrentUser(ctx context.Context, token string) (*entities.User, error)
}
