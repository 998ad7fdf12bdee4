package farmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ListFarms returns the farms of the current user.
func (c *Client) ListFarms(ctx context.Context) ([]domain.Farm, error) {
	var out []apiFarm
	if err := c.do(ctx, call{method: http.MethodGet, route: "/farms", path: "/farms", auth: true}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiFarm.toDomain), nil
}

// GetFarm returns a single farm.
func (c *Client) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	var out apiFarm
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/farms/{id}",
		path:   "/farms/" + url.PathEscape(id),
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	f := out.toDomain()
	return &f, nil
}

// CreateFarm creates a farm.
func (c *Client) CreateFarm(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error) {
	var out apiFarm
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/farms",
		path:   "/farms",
		body:   farmCreateRequest{Name: in.Name, Location: in.Location, Area: in.Area},
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	f := out.toDomain()
	return &f, nil
}
