package view

import (
	"context"
	"slices"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// FarmView shows one farm and its plots.
type FarmView struct {
	lifecycle
	api API

	farm  *domain.Farm
	plots []domain.Plot

	CreatePlot *dialog.Dialog[dialog.PlotForm, *domain.Plot]
}

// NewFarmView creates an unloaded view of farm.
func NewFarmView(deps Deps, farm *domain.Farm) *FarmView {
	deps = deps.withDefaults()
	v := &FarmView{
		lifecycle:  newLifecycle(deps, "farm"),
		api:        deps.API,
		farm:       farm,
		plots:      []domain.Plot{},
		CreatePlot: dialog.NewCreatePlot(deps.API, farm.ID),
	}
	v.CreatePlot.OnSuccess(func(p *domain.Plot) {
		v.mu.Lock()
		if v.alive() {
			v.plots = append(v.plots, *p)
		}
		v.mu.Unlock()
		v.CreatePlot.Close()
	})
	return v
}

func (v *FarmView) Load(ctx context.Context) error {
	var plots []domain.Plot
	return v.load(ctx, []fetch{
		list("plots", &plots, func(ctx context.Context) ([]domain.Plot, error) {
			return v.api.ListPlots(ctx, v.farm.ID)
		}),
	}, func() {
		v.plots = plots
	})
}

func (v *FarmView) Refresh(ctx context.Context) error { return v.Load(ctx) }

// Farm returns the farm the view was opened for.
func (v *FarmView) Farm() domain.Farm { return *v.farm }

// Plots returns a copy of the plot list.
func (v *FarmView) Plots() []domain.Plot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.plots)
}
