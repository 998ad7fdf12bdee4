package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/heartmarshall/farmdash/internal/service/loader"
	"github.com/heartmarshall/farmdash/internal/service/route"
)

// ErrNavigatedAway is returned by Open when a later navigation replaced the
// page before it finished loading.
var ErrNavigatedAway = errors.New("view: navigated away")

// chainLoader defines the ancestry fetch the navigator runs per page.
type chainLoader interface {
	Load(ctx context.Context, r route.Route) loader.Result
}

// Page is one mounted screen. View is nil when NotFound is set.
type Page struct {
	Route    route.Route
	Chain    loader.Chain
	NotFound bool
	Err      error
	View     View
}

// Dashboard returns the dashboard view, or nil for other pages.
func (p *Page) Dashboard() *Dashboard {
	v, _ := p.View.(*Dashboard)
	return v
}

// Farm returns the farm view, or nil for other pages.
func (p *Page) Farm() *FarmView {
	v, _ := p.View.(*FarmView)
	return v
}

// Plot returns the plot view, or nil for other pages.
func (p *Page) Plot() *PlotView {
	v, _ := p.View.(*PlotView)
	return v
}

// Row returns the row view, or nil for other pages.
func (p *Page) Row() *RowView {
	v, _ := p.View.(*RowView)
	return v
}

// Plant returns the plant view, or nil for other pages.
func (p *Page) Plant() *PlantView {
	v, _ := p.View.(*PlantView)
	return v
}

// Select returns the route of the child with the given id. Ancestor ids are
// carried over unchanged.
func (p *Page) Select(id string) (route.Route, error) {
	return p.Route.Child(p.Route.Kind()+1, id)
}

func (p *Page) close() {
	if p.View != nil {
		p.View.Close()
	}
}

// Navigator holds the single mounted page. Opening a page unmounts the
// previous one.
type Navigator struct {
	loader       chainLoader
	deps         Deps
	maxStaleness time.Duration

	mu   sync.Mutex
	page *Page
	gen  uint64
}

// NewNavigator creates a Navigator. A zero maxStaleness disables the
// automatic refresh in Ensure.
func NewNavigator(l chainLoader, deps Deps, maxStaleness time.Duration) *Navigator {
	deps = deps.withDefaults()
	deps.Log = deps.Log.With("service", "navigator")
	return &Navigator{loader: l, deps: deps, maxStaleness: maxStaleness}
}

// Open unmounts the current page, resolves r's entity chain and mounts a
// freshly loaded view for it.
func (n *Navigator) Open(ctx context.Context, r route.Route) (*Page, error) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	if n.page != nil {
		n.page.close()
		n.page = nil
	}
	n.mu.Unlock()

	res := n.loader.Load(ctx, r)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page := &Page{Route: r, Chain: res.Chain, NotFound: res.NotFound, Err: res.Err}
	if page.NotFound {
		n.deps.Log.InfoContext(ctx, "page not found", "route", r.Path(), "error", res.Err)
	} else {
		v, err := n.build(r, res.Chain)
		if err != nil {
			return nil, err
		}
		if err := v.Load(ctx); err != nil {
			v.Close()
			return nil, fmt.Errorf("view: load %s: %w", r.Path(), err)
		}
		page.View = v
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gen != gen {
		page.close()
		return nil, ErrNavigatedAway
	}
	n.page = page
	return page, nil
}

func (n *Navigator) build(r route.Route, c loader.Chain) (View, error) {
	switch r.Kind() {
	case route.KindDashboard:
		return NewDashboard(n.deps), nil
	case route.KindFarm:
		return NewFarmView(n.deps, c.Farm), nil
	case route.KindPlot:
		return NewPlotView(n.deps, c.Farm, c.Plot), nil
	case route.KindRow:
		return NewRowView(n.deps, c.Farm, c.Plot, c.Row), nil
	case route.KindPlant:
		return NewPlantView(n.deps, c.Farm, c.Plot, c.Row, c.Plant), nil
	}
	return nil, fmt.Errorf("view: no view for %s", r.Kind())
}

// Current returns the mounted page when it shows r.
func (n *Navigator) Current(r route.Route) *Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.page != nil && n.page.Route == r {
		return n.page
	}
	return nil
}

// Mounted reports whether p is still the mounted page.
func (n *Navigator) Mounted(p *Page) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return p != nil && n.page == p
}

// Ensure returns the mounted page for r, re-fetching it when it is older
// than the configured staleness, or opens r.
func (n *Navigator) Ensure(ctx context.Context, r route.Route) (*Page, error) {
	page := n.Current(r)
	if page == nil {
		return n.Open(ctx, r)
	}
	if page.View != nil && n.stale(page.View) {
		if err := page.View.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("view: refresh %s: %w", r.Path(), err)
		}
	}
	return page, nil
}

func (n *Navigator) stale(v View) bool {
	if n.maxStaleness <= 0 {
		return false
	}
	return n.deps.Clock.Since(v.LoadedAt()) > n.maxStaleness
}

// Close unmounts the current page.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	if n.page != nil {
		n.page.close()
		n.page = nil
	}
}
