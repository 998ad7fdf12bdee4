package farmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ListRows returns the rows of a plot.
func (c *Client) ListRows(ctx context.Context, plotID string) ([]domain.Row, error) {
	var out []apiRow
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/plots/{id}/rows",
		path:   "/plots/" + url.PathEscape(plotID) + "/rows",
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiRow.toDomain), nil
}

// GetRow returns a single row.
func (c *Client) GetRow(ctx context.Context, id string) (*domain.Row, error) {
	var out apiRow
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/plot_rows/{id}",
		path:   "/plot_rows/" + url.PathEscape(id),
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	r := out.toDomain()
	return &r, nil
}

// CreateRow creates a row in a plot.
func (c *Client) CreateRow(ctx context.Context, in domain.RowCreate) (*domain.Row, error) {
	var out apiRow
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/plot_rows",
		path:   "/plot_rows",
		body:   rowCreateRequest{Name: in.Name, Length: in.Length, Width: in.Width, PlotID: in.PlotID},
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	r := out.toDomain()
	return &r, nil
}

// UpdateRow sends a partial update; nil fields are omitted.
func (c *Client) UpdateRow(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error) {
	var out apiRow
	if err := c.do(ctx, call{
		method: http.MethodPut,
		route:  "/plot_rows/{id}",
		path:   "/plot_rows/" + url.PathEscape(id),
		body:   rowUpdateRequest{Name: in.Name, Length: in.Length, Width: in.Width},
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	r := out.toDomain()
	return &r, nil
}
