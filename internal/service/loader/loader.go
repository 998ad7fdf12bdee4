// Package loader fetches the farm → plot → row → plant chain a page needs.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/route"
)

// ErrChainMismatch marks an entity whose parent ID disagrees with the route.
var ErrChainMismatch = fmt.Errorf("loader: entity does not belong to its parent: %w", domain.ErrNotFound)

// entityAPI defines the single-entity reads needed by the loader.
type entityAPI interface {
	GetFarm(ctx context.Context, id string) (*domain.Farm, error)
	GetPlot(ctx context.Context, id string) (*domain.Plot, error)
	GetRow(ctx context.Context, id string) (*domain.Row, error)
	GetPlant(ctx context.Context, id string) (*domain.Plant, error)
}

// Chain is the resolved ancestry of a page. Entities below the route's depth
// are nil.
type Chain struct {
	Farm  *domain.Farm
	Plot  *domain.Plot
	Row   *domain.Row
	Plant *domain.Plant
}

// Result of Load. NotFound is terminal: the page must show its not-found
// state and issue no mutations. Err carries the individual failures.
type Result struct {
	Chain
	NotFound bool
	Err      error
}

// Loader fetches entity chains.
type Loader struct {
	log *slog.Logger
	api entityAPI
}

// New creates a Loader.
func New(logger *slog.Logger, api entityAPI) *Loader {
	return &Loader{
		log: logger.With("service", "loader"),
		api: api,
	}
}

// Load fetches every entity named by r concurrently. A failing fetch does not
// cancel its siblings; Load returns once all have settled. The dashboard
// route needs nothing and always succeeds.
func (l *Loader) Load(ctx context.Context, r route.Route) Result {
	if r.Kind() == route.KindDashboard {
		return Result{}
	}
	if !r.Valid() {
		return Result{NotFound: true, Err: fmt.Errorf("loader: incomplete route %s: %w", r, domain.ErrNotFound)}
	}

	var (
		g     errgroup.Group
		chain Chain
		errs  [4]error
	)

	fetch := func(slot int, kind string, id string, fn func() error) {
		if id == "" {
			return
		}
		g.Go(func() error {
			if err := fn(); err != nil {
				errs[slot] = fmt.Errorf("loader: %s %s: %w", kind, id, err)
			}
			return nil
		})
	}

	fetch(0, "farm", r.FarmID, func() (err error) {
		chain.Farm, err = l.api.GetFarm(ctx, r.FarmID)
		return err
	})
	fetch(1, "plot", r.PlotID, func() (err error) {
		chain.Plot, err = l.api.GetPlot(ctx, r.PlotID)
		return err
	})
	fetch(2, "row", r.RowID, func() (err error) {
		chain.Row, err = l.api.GetRow(ctx, r.RowID)
		return err
	})
	fetch(3, "plant", r.PlantID, func() (err error) {
		chain.Plant, err = l.api.GetPlant(ctx, r.PlantID)
		return err
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Result{NotFound: true, Err: err}
	}

	if err := errors.Join(errs[:]...); err != nil {
		l.log.WarnContext(ctx, "entity chain incomplete",
			slog.String("route", r.Path()),
			slog.String("error", err.Error()),
		)
		return Result{Chain: chain, NotFound: true, Err: err}
	}

	if err := checkAncestry(r, chain); err != nil {
		l.log.WarnContext(ctx, "entity chain mismatch",
			slog.String("route", r.Path()),
			slog.String("error", err.Error()),
		)
		return Result{Chain: chain, NotFound: true, Err: err}
	}

	return Result{Chain: chain}
}

// checkAncestry verifies parent links where the backend populated them.
func checkAncestry(r route.Route, c Chain) error {
	if c.Farm == nil || (r.PlotID != "" && c.Plot == nil) ||
		(r.RowID != "" && c.Row == nil) || (r.PlantID != "" && c.Plant == nil) {
		return fmt.Errorf("loader: empty entity for %s: %w", r, domain.ErrNotFound)
	}
	if c.Plot != nil && c.Plot.FarmID != "" && c.Plot.FarmID != c.Farm.ID {
		return fmt.Errorf("plot %s: farm %s: %w", c.Plot.ID, c.Farm.ID, ErrChainMismatch)
	}
	if c.Row != nil && c.Row.PlotID != "" && c.Row.PlotID != c.Plot.ID {
		return fmt.Errorf("row %s: plot %s: %w", c.Row.ID, c.Plot.ID, ErrChainMismatch)
	}
	if c.Plant != nil && c.Plant.RowID != "" && c.Plant.RowID != c.Row.ID {
		return fmt.Errorf("plant %s: row %s: %w", c.Plant.ID, c.Row.ID, ErrChainMismatch)
	}
	return nil
}
