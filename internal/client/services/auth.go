package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
)

// AuthService exchanges credentials for a bearer token and rotates
// passwords. Session bookkeeping (persisting the token, decoding the
// principal) belongs to the session layer, not here.
type AuthService interface {
	// Login returns the bearer token issued by the backend.
	Login(ctx context.Context, username, password string) (string, error)

	// ChangePassword rotates the password. The backend invalidates the
	// current token on success, so the caller must log the session out.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

type authService struct {
	api gateway.Doer
}

func NewAuthService(api gateway.Doer) AuthService {
	return &authService{api: api}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	data, err := s.api.Do(ctx, http.MethodPost, gateway.LoginPath,
		loginRequest{Username: username, Password: password}, nil)
	if err != nil {
		return "", err
	}

	var resp loginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	return resp.AccessToken, nil
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	_, err := s.api.Do(ctx, http.MethodPut, "/x/change-password",
		changePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}, nil)
	return err
}
