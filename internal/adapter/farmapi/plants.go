package farmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ListPlants returns the plants of a row.
func (c *Client) ListPlants(ctx context.Context, rowID string) ([]domain.Plant, error) {
	var out []apiPlant
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/plot_rows/{id}/plants",
		path:   "/plot_rows/" + url.PathEscape(rowID) + "/plants",
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiPlant.toDomain), nil
}

// GetPlant returns a single plant.
func (c *Client) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	var out apiPlant
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/plants/{id}",
		path:   "/plants/" + url.PathEscape(id),
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// CreatePlant creates one plant in a row.
func (c *Client) CreatePlant(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error) {
	var out apiPlant
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/plants",
		path:   "/plants",
		body: plantCreateRequest{
			SpeciesID: in.SpeciesID,
			Position:  in.Position,
			Status:    in.Status.String(),
			RowID:     in.RowID,
		},
		auth: true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// BatchCreatePlants creates Count plants of one species in a row.
func (c *Client) BatchCreatePlants(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error) {
	var out []apiPlant
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/plants/batch",
		path:   "/plants/batch",
		body:   plantBatchRequest{RowID: in.RowID, SpeciesID: in.SpeciesID, Count: in.Count},
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiPlant.toDomain), nil
}

// UpdatePlant sends a partial update of status and position.
func (c *Client) UpdatePlant(ctx context.Context, id string, in domain.PlantUpdate) (*domain.Plant, error) {
	body := plantUpdateRequest{Position: in.Position}
	if in.Status != nil {
		s := in.Status.String()
		body.Status = &s
	}

	var out apiPlant
	if err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/plants/{id}",
		path:   "/plants/" + url.PathEscape(id),
		body:   body,
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	p := out.toDomain()
	return &p, nil
}

// ListSpecies returns the species catalog.
func (c *Client) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	var out []apiSpecies
	if err := c.do(ctx, call{method: http.MethodGet, route: "/species", path: "/species", auth: true}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiSpecies.toDomain), nil
}
