package view

import (
	"context"
	"slices"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// PlotView shows one plot with its rows and action log.
type PlotView struct {
	lifecycle
	api API

	plotID          string
	farm            *domain.Farm
	plot            *domain.Plot
	rows            []domain.Row
	actions         []domain.Action
	possibleActions []domain.PossibleAction

	CreateRow *dialog.Dialog[dialog.RowForm, *domain.Row]
	EditPlot  *dialog.Dialog[dialog.PlotForm, *domain.Plot]
	AddAction *dialog.Dialog[dialog.ActionForm, *domain.Action]
}

// NewPlotView creates an unloaded view of plot under farm.
func NewPlotView(deps Deps, farm *domain.Farm, plot *domain.Plot) *PlotView {
	deps = deps.withDefaults()
	v := &PlotView{
		lifecycle:       newLifecycle(deps, "plot"),
		api:             deps.API,
		plotID:          plot.ID,
		farm:            farm,
		plot:            plot,
		rows:            []domain.Row{},
		actions:         []domain.Action{},
		possibleActions: []domain.PossibleAction{},
	}

	v.CreateRow = dialog.NewCreateRow(deps.API, plot.ID)
	v.CreateRow.OnSuccess(func(r *domain.Row) {
		v.mu.Lock()
		if v.alive() {
			v.rows = append(v.rows, *r)
		}
		v.mu.Unlock()
		v.CreateRow.Close()
	})

	v.EditPlot = dialog.NewEditPlot(deps.API, v.currentPlot)
	v.EditPlot.OnSuccess(func(p *domain.Plot) {
		v.mu.Lock()
		if v.alive() {
			v.plot = p
		}
		v.mu.Unlock()
	})

	v.AddAction = dialog.NewAddAction(deps.API,
		domain.ActionTarget{Type: domain.TargetPlot, ID: plot.ID},
		v.PossibleActions)
	v.AddAction.OnSuccess(func(a *domain.Action) {
		v.mu.Lock()
		if v.alive() {
			v.actions = append(v.actions, *a)
		}
		v.mu.Unlock()
		v.AddAction.Close()
	})
	return v
}

func (v *PlotView) Load(ctx context.Context) error {
	var (
		rows     []domain.Row
		actions  []domain.Action
		possible []domain.PossibleAction
	)
	return v.load(ctx, []fetch{
		list("rows", &rows, func(ctx context.Context) ([]domain.Row, error) {
			return v.api.ListRows(ctx, v.plotID)
		}),
		list("plot_actions", &actions, func(ctx context.Context) ([]domain.Action, error) {
			return v.api.ListPlotActions(ctx, v.plotID)
		}),
		list("possible_actions", &possible, v.api.ListPossibleActions),
	}, func() {
		v.rows = rows
		v.actions = actions
		v.possibleActions = possible
	})
}

func (v *PlotView) Refresh(ctx context.Context) error { return v.Load(ctx) }

func (v *PlotView) currentPlot() *domain.Plot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.plot
}

// Farm returns the ancestor farm.
func (v *PlotView) Farm() domain.Farm { return *v.farm }

// Plot returns the plot, including any edit made through EditPlot.
func (v *PlotView) Plot() domain.Plot { return *v.currentPlot() }

// Rows returns a copy of the row list.
func (v *PlotView) Rows() []domain.Row {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.rows)
}

// Actions returns a copy of the plot's action log.
func (v *PlotView) Actions() []domain.Action {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.actions)
}

// PossibleActions returns a copy of the action catalog.
func (v *PlotView) PossibleActions() []domain.PossibleAction {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.possibleActions)
}
