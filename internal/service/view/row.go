package view

import (
	"context"
	"slices"

	"github.com/heartmarshall/farmdash/internal/domain"
	"github.com/heartmarshall/farmdash/internal/service/dialog"
)

// RowView shows one row with its plants and action log.
type RowView struct {
	lifecycle
	api API

	rowID           string
	farm            *domain.Farm
	plot            *domain.Plot
	row             *domain.Row
	plants          []domain.Plant
	actions         []domain.Action
	possibleActions []domain.PossibleAction
	species         []domain.Species

	CreatePlant  *dialog.Dialog[dialog.PlantForm, *domain.Plant]
	CreatePlants *dialog.Dialog[dialog.BatchForm, []domain.Plant]
	EditRow      *dialog.Dialog[dialog.RowForm, *domain.Row]
	AddAction    *dialog.Dialog[dialog.ActionForm, *domain.Action]
}

// NewRowView creates an unloaded view of row under farm and plot.
func NewRowView(deps Deps, farm *domain.Farm, plot *domain.Plot, row *domain.Row) *RowView {
	deps = deps.withDefaults()
	v := &RowView{
		lifecycle:       newLifecycle(deps, "row"),
		api:             deps.API,
		rowID:           row.ID,
		farm:            farm,
		plot:            plot,
		row:             row,
		plants:          []domain.Plant{},
		actions:         []domain.Action{},
		possibleActions: []domain.PossibleAction{},
		species:         []domain.Species{},
	}

	v.CreatePlant = dialog.NewCreatePlant(deps.API, row.ID, v.Species)
	v.CreatePlant.OnSuccess(func(p *domain.Plant) {
		v.appendPlants(*p)
		v.CreatePlant.Close()
	})

	v.CreatePlants = dialog.NewBatchCreatePlants(deps.API, row.ID, v.Species)
	v.CreatePlants.OnSuccess(func(ps []domain.Plant) {
		v.appendPlants(ps...)
		v.CreatePlants.Close()
	})

	v.EditRow = dialog.NewEditRow(deps.API, v.currentRow)
	v.EditRow.OnSuccess(func(r *domain.Row) {
		v.mu.Lock()
		if v.alive() {
			v.row = r
		}
		v.mu.Unlock()
	})

	v.AddAction = dialog.NewAddAction(deps.API,
		domain.ActionTarget{Type: domain.TargetRow, ID: row.ID},
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

func (v *RowView) appendPlants(ps ...domain.Plant) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.alive() {
		v.plants = append(v.plants, ps...)
	}
}

func (v *RowView) Load(ctx context.Context) error {
	var (
		plants   []domain.Plant
		actions  []domain.Action
		possible []domain.PossibleAction
		species  []domain.Species
	)
	return v.load(ctx, []fetch{
		list("plants", &plants, func(ctx context.Context) ([]domain.Plant, error) {
			return v.api.ListPlants(ctx, v.rowID)
		}),
		list("row_actions", &actions, func(ctx context.Context) ([]domain.Action, error) {
			return v.api.ListRowActions(ctx, v.rowID)
		}),
		list("possible_actions", &possible, v.api.ListPossibleActions),
		list("species", &species, v.api.ListSpecies),
	}, func() {
		v.plants = plants
		v.actions = actions
		v.possibleActions = possible
		v.species = species
	})
}

func (v *RowView) Refresh(ctx context.Context) error { return v.Load(ctx) }

func (v *RowView) currentRow() *domain.Row {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.row
}

// Farm returns the ancestor farm.
func (v *RowView) Farm() domain.Farm { return *v.farm }

// Plot returns the ancestor plot.
func (v *RowView) Plot() domain.Plot { return *v.plot }

// Row returns the row, including any edit made through EditRow.
func (v *RowView) Row() domain.Row { return *v.currentRow() }

// Plants returns a copy of the plant list.
func (v *RowView) Plants() []domain.Plant {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.plants)
}

// Actions returns a copy of the row's action log.
func (v *RowView) Actions() []domain.Action {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.actions)
}

// PossibleActions returns a copy of the action catalog.
func (v *RowView) PossibleActions() []domain.PossibleAction {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.possibleActions)
}

// Species returns a copy of the species catalog.
func (v *RowView) Species() []domain.Species {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.species)
}
