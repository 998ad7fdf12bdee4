package dialog

import (
	"context"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// Mutator defines the create and update calls the dialogs submit.
type Mutator interface {
	CreateFarm(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error)
	CreatePlot(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error)
	UpdatePlot(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error)
	CreateRow(ctx context.Context, in domain.RowCreate) (*domain.Row, error)
	UpdateRow(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error)
	CreatePlant(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error)
	BatchCreatePlants(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error)
	CreateAction(ctx context.Context, in domain.ActionCreate) (*domain.Action, error)
}

// Dialog kinds.
const (
	NameCreateFarm   = "create-farm"
	NameCreatePlot   = "create-plot"
	NameEditPlot     = "edit-plot"
	NameCreateRow    = "create-row"
	NameEditRow      = "edit-row"
	NameCreatePlant  = "create-plant"
	NameCreatePlants = "create-plants"
	NameAddAction    = "add-action"
)
