package farmapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/heartmarshall/farmdash/internal/domain"
)

const loginFailed = "Login failed"

// Login exchanges credentials for a token. A 2xx response without a token
// is still a failure carrying the body's message.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	var out apiLogin
	err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/auth/login",
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	}, &out)
	if err != nil {
		return nil, err
	}

	if out.Token == "" {
		msg := out.Message
		if msg == "" {
			msg = loginFailed
		}
		return nil, fmt.Errorf("farmapi: POST /auth/login: %w",
			&domain.APIError{StatusCode: http.StatusUnauthorized, Message: msg})
	}

	return &domain.LoginResult{Token: out.Token, User: out.User.toDomain()}, nil
}

// Logout ends the session on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		route:  "/auth/logout",
		path:   "/auth/logout",
		auth:   true,
	}, nil)
}

// Me returns the user owning the current token.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out apiUser
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/auth/me",
		path:   "/auth/me",
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, fmt.Errorf("farmapi: GET /auth/me: %w", &domain.APIError{StatusCode: http.StatusUnauthorized})
	}
	return out.toDomain(), nil
}
