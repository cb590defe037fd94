package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"blogclient/internal/domain"
)

type userResponse struct {
	Status string `json:"status"`
	Data   struct {
		User domain.User `json:"user"`
	} `json:"data"`
}

// Me asks the API who the current session belongs to. Any rejected
// response means "no session" here; only transport failures are
// reported as the API being unreachable.
func (g *Gateway) Me(ctx context.Context) (*domain.User, error) {
	var resp userResponse
	if err := g.do(ctx, http.MethodGet, "/users/me", nil, "", &resp); err != nil {
		if errors.Is(err, domain.ErrAPIUnavailable) || errors.Is(err, domain.ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	return &resp.Data.User, nil
}

// Login authenticates with email and password. The access token rides
// on the response cookie; the body is decoded only to confirm success.
func (g *Gateway) Login(ctx context.Context, email, password string) error {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}

	var resp struct {
		Status      string `json:"status"`
		AccessToken string `json:"access_token"`
	}
	return g.do(ctx, http.MethodPost, "/auth/login", bytes.NewReader(payload), "application/json", &resp)
}

// Logout ends the server-side session.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.do(ctx, http.MethodGet, "/auth/logout", nil, "", nil)
}

// Register creates a new account. Registration does not start a
// session; the caller still logs in afterwards.
func (g *Gateway) Register(ctx context.Context, reg domain.Registration) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return err
	}

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return g.do(ctx, http.MethodPost, "/auth/register", bytes.NewReader(payload), "application/json", &resp)
}
