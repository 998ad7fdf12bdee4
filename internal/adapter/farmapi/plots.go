package farmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ListPlots returns the plots of a farm.
func (c *Client) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	var out []apiPlot
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/farms/{id}/plots",
		path:   "/farms/" + url.PathEscape(farmID) + "/plots",
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiPlot.toDomain), nil
}

// GetPlot returns a single plot.
func (c *Client) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	var out apiPlot
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/plots/{id}",
		path:   "/plots/" + url.PathEscape(id),
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// CreatePlot creates a plot on a farm.
func (c *Client) CreatePlot(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error) {
	var out apiPlot
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/plots",
		path:   "/plots",
		body: plotCreateRequest{
			Name:        in.Name,
			Area:        in.Area,
			Coordinates: in.Coordinates,
			Polygon:     in.Polygon,
			FarmID:      in.FarmID,
		},
		auth: true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// UpdatePlot sends a partial update; nil fields are omitted.
func (c *Client) UpdatePlot(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error) {
	var out apiPlot
	if err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/plots/{id}",
		path:   "/plots/" + url.PathEscape(id),
		body: plotUpdateRequest{
			Name:        in.Name,
			Area:        in.Area,
			Coordinates: in.Coordinates,
			Polygon:     in.Polygon,
		},
		auth: true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}
