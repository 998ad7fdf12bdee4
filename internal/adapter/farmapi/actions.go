package farmapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// ListActions returns every action visible to the user.
func (c *Client) ListActions(ctx context.Context) ([]domain.Action, error) {
	return c.listActions(ctx, "/actions", "/actions")
}

// ListPlotActions returns the actions logged against a plot.
func (c *Client) ListPlotActions(ctx context.Context, plotID string) ([]domain.Action, error) {
	return c.listActions(ctx, "/plots/{id}/actions", "/plots/"+url.PathEscape(plotID)+"/actions")
}

// ListRowActions returns the actions logged against a row.
func (c *Client) ListRowActions(ctx context.Context, rowID string) ([]domain.Action, error) {
	return c.listActions(ctx, "/plot_rows/{id}/actions", "/plot_rows/"+url.PathEscape(rowID)+"/actions")
}

// ListPlantActions returns the actions logged against a plant.
func (c *Client) ListPlantActions(ctx context.Context, plantID string) ([]domain.Action, error) {
	return c.listActions(ctx, "/plants/{id}/actions", "/plants/"+url.PathEscape(plantID)+"/actions")
}

func (c *Client) listActions(ctx context.Context, route, path string) ([]domain.Action, error) {
	var out []apiAction
	if err := c.do(ctx, call{method: http.MethodGet, route: route, path: path, auth: true}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiAction.toDomain), nil
}

// ListPossibleActions returns the catalog of action kinds.
func (c *Client) ListPossibleActions(ctx context.Context) ([]domain.PossibleAction, error) {
	var out []apiPossibleAction
	if err := c.do(ctx, call{
		method: http.MethodGet,
		route:  "/possible_actions",
		path:   "/possible_actions",
		auth:   true,
	}, &out); err != nil {
		return nil, err
	}
	return mapSlice(out, apiPossibleAction.toDomain), nil
}

// CreateAction logs an action against exactly one target.
func (c *Client) CreateAction(ctx context.Context, in domain.ActionCreate) (*domain.Action, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out apiAction
	if err := c.do(ctx, call{
		method: http.MethodPost,
		route:  "/actions",
		path:   "/actions",
		body: actionCreateRequest{
			PossibleActionID: in.PossibleActionID,
			Description:      in.Description,
			PlotID:           in.Target.PlotID(),
			RowID:            in.Target.RowID(),
			PlantID:          in.Target.PlantID(),
		},
		auth: true,
	}, &out); err != nil {
		return nil, err
	}
	a := out.toDomain()
	if a.Target.ID == "" {
		a.Target = in.Target
	}
	return &a, nil
}
