package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"go.uber.org/zap"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
	mePath       = "/api/auth/me"
)

type apiAuthService struct {
	logger *zap.Logger
	client *Client
}

// NewAPIAuthService creates a new AuthService that uses the tender API
func NewAPIAuthService(logger *zap.Logger, client *Client) services.AuthService {
	return &apiAuthService{
		logger: logger,
		client: client,
	}
}

// loginRes accepts both token field names used by the API, access_token is preferred
type loginRes struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

func (s *apiAuthService) Login(ctx context.Context, email, password string) (string, error) {
	var res loginRes
	err := s.client.Do(ctx, http.MethodPost, loginPath, entities.Credentials{
		Email:    email,
		Password: password,
	}, "", &res)
	if err != nil {
		return "", errors.Wrap(err, "could not log in")
	}

	token := res.AccessToken
	if token == "" {
		token = res.Token
	}
	if token == "" {
		s.logger.Error("login response did not contain a token", zap.String("email", email))
		return "", &services.APIError{Status: http.StatusOK, Message: "login response did not contain a token"}
	}

	return token, nil
}

func (s *apiAuthService) Register(ctx context.Context, req entities.RegisterRequest) error {
	err := s.client.Do(ctx, http.MethodPost, registerPath, req, "", nil)
	if err != nil {
		return errors.Wrap(err, "could not register user")
	}
	return nil
}

func (s *apiAuthService) GetCurrentUser(ctx context.Context, token string) (*entities.User, error) {
	var user entities.User
	err := s.client.Do(ctx, http.MethodGet, mePath, nil, token, &user)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch current user")
	}
	return &user, nil
}
