package view

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/domain"
)

var _ API = &APIMock{}

// APIMock is a mock implementation of API.
type APIMock struct {
	BatchCreatePlantsFunc   func(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error)
	CreateActionFunc        func(ctx context.Context, in domain.ActionCreate) (*domain.Action, error)
	CreateFarmFunc          func(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error)
	CreatePlantFunc         func(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error)
	CreatePlotFunc          func(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error)
	CreateRowFunc           func(ctx context.Context, in domain.RowCreate) (*domain.Row, error)
	ListFarmsFunc           func(ctx context.Context) ([]domain.Farm, error)
	ListPlantActionsFunc    func(ctx context.Context, plantID string) ([]domain.Action, error)
	ListPlantsFunc          func(ctx context.Context, rowID string) ([]domain.Plant, error)
	ListPlotActionsFunc     func(ctx context.Context, plotID string) ([]domain.Action, error)
	ListPlotsFunc           func(ctx context.Context, farmID string) ([]domain.Plot, error)
	ListPossibleActionsFunc func(ctx context.Context) ([]domain.PossibleAction, error)
	ListRowActionsFunc      func(ctx context.Context, rowID string) ([]domain.Action, error)
	ListRowsFunc            func(ctx context.Context, plotID string) ([]domain.Row, error)
	ListSpeciesFunc         func(ctx context.Context) ([]domain.Species, error)
	UpdatePlantFunc         func(ctx context.Context, id string, in domain.PlantUpdate) (*domain.Plant, error)
	UpdatePlotFunc          func(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error)
	UpdateRowFunc           func(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error)

	calls struct {
		BatchCreatePlants []struct {
			Ctx context.Context
			In  domain.PlantBatchCreate
		}
		CreateAction []struct {
			Ctx context.Context
			In  domain.ActionCreate
		}
		CreateFarm []struct {
			Ctx context.Context
			In  domain.FarmCreate
		}
		CreatePlant []struct {
			Ctx context.Context
			In  domain.PlantCreate
		}
		CreatePlot []struct {
			Ctx context.Context
			In  domain.PlotCreate
		}
		CreateRow []struct {
			Ctx context.Context
			In  domain.RowCreate
		}
		ListFarms []struct {
			Ctx context.Context
		}
		ListPlantActions []struct {
			Ctx     context.Context
			PlantID string
		}
		ListPlants []struct {
			Ctx   context.Context
			RowID string
		}
		ListPlotActions []struct {
			Ctx    context.Context
			PlotID string
		}
		ListPlots []struct {
			Ctx    context.Context
			FarmID string
		}
		ListPossibleActions []struct {
			Ctx context.Context
		}
		ListRowActions []struct {
			Ctx   context.Context
			RowID string
		}
		ListRows []struct {
			Ctx    context.Context
			PlotID string
		}
		ListSpecies []struct {
			Ctx context.Context
		}
		UpdatePlant []struct {
			Ctx context.Context
			ID  string
			In  domain.PlantUpdate
		}
		UpdatePlot []struct {
			Ctx context.Context
			ID  string
			In  domain.PlotUpdate
		}
		UpdateRow []struct {
			Ctx context.Context
			ID  string
			In  domain.RowUpdate
		}
	}
	lockBatchCreatePlants   sync.RWMutex
	lockCreateAction        sync.RWMutex
	lockCreateFarm          sync.RWMutex
	lockCreatePlant         sync.RWMutex
	lockCreatePlot          sync.RWMutex
	lockCreateRow           sync.RWMutex
	lockListFarms           sync.RWMutex
	lockListPlantActions    sync.RWMutex
	lockListPlants          sync.RWMutex
	lockListPlotActions     sync.RWMutex
	lockListPlots           sync.RWMutex
	lockListPossibleActions sync.RWMutex
	lockListRowActions      sync.RWMutex
	lockListRows            sync.RWMutex
	lockListSpecies         sync.RWMutex
	lockUpdatePlant         sync.RWMutex
	lockUpdatePlot          sync.RWMutex
	lockUpdateRow           sync.RWMutex
}

// BatchCreatePlants calls BatchCreatePlantsFunc.
func (mock *APIMock) BatchCreatePlants(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error) {
	if mock.BatchCreatePlantsFunc == nil {
		panic("APIMock.BatchCreatePlantsFunc: method is nil but API.BatchCreatePlants was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.PlantBatchCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockBatchCreatePlants.Lock()
	mock.calls.BatchCreatePlants = append(mock.calls.BatchCreatePlants, callInfo)
	mock.lockBatchCreatePlants.Unlock()
	return mock.BatchCreatePlantsFunc(ctx, in)
}

// BatchCreatePlantsCalls gets all the calls that were made to BatchCreatePlants.
func (mock *APIMock) BatchCreatePlantsCalls() []struct {
	Ctx context.Context
	In  domain.PlantBatchCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.PlantBatchCreate
	}
	mock.lockBatchCreatePlants.RLock()
	calls = mock.calls.BatchCreatePlants
	mock.lockBatchCreatePlants.RUnlock()
	return calls
}

// CreateAction calls CreateActionFunc.
func (mock *APIMock) CreateAction(ctx context.Context, in domain.ActionCreate) (*domain.Action, error) {
	if mock.CreateActionFunc == nil {
		panic("APIMock.CreateActionFunc: method is nil but API.CreateAction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.ActionCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreateAction.Lock()
	mock.calls.CreateAction = append(mock.calls.CreateAction, callInfo)
	mock.lockCreateAction.Unlock()
	return mock.CreateActionFunc(ctx, in)
}

// CreateActionCalls gets all the calls that were made to CreateAction.
func (mock *APIMock) CreateActionCalls() []struct {
	Ctx context.Context
	In  domain.ActionCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.ActionCreate
	}
	mock.lockCreateAction.RLock()
	calls = mock.calls.CreateAction
	mock.lockCreateAction.RUnlock()
	return calls
}

// CreateFarm calls CreateFarmFunc.
func (mock *APIMock) CreateFarm(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error) {
	if mock.CreateFarmFunc == nil {
		panic("APIMock.CreateFarmFunc: method is nil but API.CreateFarm was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.FarmCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreateFarm.Lock()
	mock.calls.CreateFarm = append(mock.calls.CreateFarm, callInfo)
	mock.lockCreateFarm.Unlock()
	return mock.CreateFarmFunc(ctx, in)
}

// CreateFarmCalls gets all the calls that were made to CreateFarm.
func (mock *APIMock) CreateFarmCalls() []struct {
	Ctx context.Context
	In  domain.FarmCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.FarmCreate
	}
	mock.lockCreateFarm.RLock()
	calls = mock.calls.CreateFarm
	mock.lockCreateFarm.RUnlock()
	return calls
}

// CreatePlant calls CreatePlantFunc.
func (mock *APIMock) CreatePlant(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error) {
	if mock.CreatePlantFunc == nil {
		panic("APIMock.CreatePlantFunc: method is nil but API.CreatePlant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.PlantCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreatePlant.Lock()
	mock.calls.CreatePlant = append(mock.calls.CreatePlant, callInfo)
	mock.lockCreatePlant.Unlock()
	return mock.CreatePlantFunc(ctx, in)
}

// CreatePlantCalls gets all the calls that were made to CreatePlant.
func (mock *APIMock) CreatePlantCalls() []struct {
	Ctx context.Context
	In  domain.PlantCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.PlantCreate
	}
	mock.lockCreatePlant.RLock()
	calls = mock.calls.CreatePlant
	mock.lockCreatePlant.RUnlock()
	return calls
}

// CreatePlot calls CreatePlotFunc.
func (mock *APIMock) CreatePlot(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error) {
	if mock.CreatePlotFunc == nil {
		panic("APIMock.CreatePlotFunc: method is nil but API.CreatePlot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.PlotCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreatePlot.Lock()
	mock.calls.CreatePlot = append(mock.calls.CreatePlot, callInfo)
	mock.lockCreatePlot.Unlock()
	return mock.CreatePlotFunc(ctx, in)
}

// CreatePlotCalls gets all the calls that were made to CreatePlot.
func (mock *APIMock) CreatePlotCalls() []struct {
	Ctx context.Context
	In  domain.PlotCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.PlotCreate
	}
	mock.lockCreatePlot.RLock()
	calls = mock.calls.CreatePlot
	mock.lockCreatePlot.RUnlock()
	return calls
}

// CreateRow calls CreateRowFunc.
func (mock *APIMock) CreateRow(ctx context.Context, in domain.RowCreate) (*domain.Row, error) {
	if mock.CreateRowFunc == nil {
		panic("APIMock.CreateRowFunc: method is nil but API.CreateRow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.RowCreate
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockCreateRow.Lock()
	mock.calls.CreateRow = append(mock.calls.CreateRow, callInfo)
	mock.lockCreateRow.Unlock()
	return mock.CreateRowFunc(ctx, in)
}

// CreateRowCalls gets all the calls that were made to CreateRow.
func (mock *APIMock) CreateRowCalls() []struct {
	Ctx context.Context
	In  domain.RowCreate
} {
	var calls []struct {
		Ctx context.Context
		In  domain.RowCreate
	}
	mock.lockCreateRow.RLock()
	calls = mock.calls.CreateRow
	mock.lockCreateRow.RUnlock()
	return calls
}

// ListFarms calls ListFarmsFunc.
func (mock *APIMock) ListFarms(ctx context.Context) ([]domain.Farm, error) {
	if mock.ListFarmsFunc == nil {
		panic("APIMock.ListFarmsFunc: method is nil but API.ListFarms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListFarms.Lock()
	mock.calls.ListFarms = append(mock.calls.ListFarms, callInfo)
	mock.lockListFarms.Unlock()
	return mock.ListFarmsFunc(ctx)
}

// ListFarmsCalls gets all the calls that were made to ListFarms.
func (mock *APIMock) ListFarmsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListFarms.RLock()
	calls = mock.calls.ListFarms
	mock.lockListFarms.RUnlock()
	return calls
}

// ListPlantActions calls ListPlantActionsFunc.
func (mock *APIMock) ListPlantActions(ctx context.Context, plantID string) ([]domain.Action, error) {
	if mock.ListPlantActionsFunc == nil {
		panic("APIMock.ListPlantActionsFunc: method is nil but API.ListPlantActions was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PlantID string
	}{
		Ctx:     ctx,
		PlantID: plantID,
	}
	mock.lockListPlantActions.Lock()
	mock.calls.ListPlantActions = append(mock.calls.ListPlantActions, callInfo)
	mock.lockListPlantActions.Unlock()
	return mock.ListPlantActionsFunc(ctx, plantID)
}

// ListPlantActionsCalls gets all the calls that were made to ListPlantActions.
func (mock *APIMock) ListPlantActionsCalls() []struct {
	Ctx     context.Context
	PlantID string
} {
	var calls []struct {
		Ctx     context.Context
		PlantID string
	}
	mock.lockListPlantActions.RLock()
	calls = mock.calls.ListPlantActions
	mock.lockListPlantActions.RUnlock()
	return calls
}

// ListPlants calls ListPlantsFunc.
func (mock *APIMock) ListPlants(ctx context.Context, rowID string) ([]domain.Plant, error) {
	if mock.ListPlantsFunc == nil {
		panic("APIMock.ListPlantsFunc: method is nil but API.ListPlants was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RowID string
	}{
		Ctx:   ctx,
		RowID: rowID,
	}
	mock.lockListPlants.Lock()
	mock.calls.ListPlants = append(mock.calls.ListPlants, callInfo)
	mock.lockListPlants.Unlock()
	return mock.ListPlantsFunc(ctx, rowID)
}

// ListPlantsCalls gets all the calls that were made to ListPlants.
func (mock *APIMock) ListPlantsCalls() []struct {
	Ctx   context.Context
	RowID string
} {
	var calls []struct {
		Ctx   context.Context
		RowID string
	}
	mock.lockListPlants.RLock()
	calls = mock.calls.ListPlants
	mock.lockListPlants.RUnlock()
	return calls
}

// ListPlotActions calls ListPlotActionsFunc.
func (mock *APIMock) ListPlotActions(ctx context.Context, plotID string) ([]domain.Action, error) {
	if mock.ListPlotActionsFunc == nil {
		panic("APIMock.ListPlotActionsFunc: method is nil but API.ListPlotActions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlotID string
	}{
		Ctx:    ctx,
		PlotID: plotID,
	}
	mock.lockListPlotActions.Lock()
	mock.calls.ListPlotActions = append(mock.calls.ListPlotActions, callInfo)
	mock.lockListPlotActions.Unlock()
	return mock.ListPlotActionsFunc(ctx, plotID)
}

// ListPlotActionsCalls gets all the calls that were made to ListPlotActions.
func (mock *APIMock) ListPlotActionsCalls() []struct {
	Ctx    context.Context
	PlotID string
} {
	var calls []struct {
		Ctx    context.Context
		PlotID string
	}
	mock.lockListPlotActions.RLock()
	calls = mock.calls.ListPlotActions
	mock.lockListPlotActions.RUnlock()
	return calls
}

// ListPlots calls ListPlotsFunc.
func (mock *APIMock) ListPlots(ctx context.Context, farmID string) ([]domain.Plot, error) {
	if mock.ListPlotsFunc == nil {
		panic("APIMock.ListPlotsFunc: method is nil but API.ListPlots was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		FarmID string
	}{
		Ctx:    ctx,
		FarmID: farmID,
	}
	mock.lockListPlots.Lock()
	mock.calls.ListPlots = append(mock.calls.ListPlots, callInfo)
	mock.lockListPlots.Unlock()
	return mock.ListPlotsFunc(ctx, farmID)
}

// ListPlotsCalls gets all the calls that were made to ListPlots.
func (mock *APIMock) ListPlotsCalls() []struct {
	Ctx    context.Context
	FarmID string
} {
	var calls []struct {
		Ctx    context.Context
		FarmID string
	}
	mock.lockListPlots.RLock()
	calls = mock.calls.ListPlots
	mock.lockListPlots.RUnlock()
	return calls
}

// ListPossibleActions calls ListPossibleActionsFunc.
func (mock *APIMock) ListPossibleActions(ctx context.Context) ([]domain.PossibleAction, error) {
	if mock.ListPossibleActionsFunc == nil {
		panic("APIMock.ListPossibleActionsFunc: method is nil but API.ListPossibleActions was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListPossibleActions.Lock()
	mock.calls.ListPossibleActions = append(mock.calls.ListPossibleActions, callInfo)
	mock.lockListPossibleActions.Unlock()
	return mock.ListPossibleActionsFunc(ctx)
}

// ListPossibleActionsCalls gets all the calls that were made to ListPossibleActions.
func (mock *APIMock) ListPossibleActionsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListPossibleActions.RLock()
	calls = mock.calls.ListPossibleActions
	mock.lockListPossibleActions.RUnlock()
	return calls
}

// ListRowActions calls ListRowActionsFunc.
func (mock *APIMock) ListRowActions(ctx context.Context, rowID string) ([]domain.Action, error) {
	if mock.ListRowActionsFunc == nil {
		panic("APIMock.ListRowActionsFunc: method is nil but API.ListRowActions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RowID string
	}{
		Ctx:   ctx,
		RowID: rowID,
	}
	mock.lockListRowActions.Lock()
	mock.calls.ListRowActions = append(mock.calls.ListRowActions, callInfo)
	mock.lockListRowActions.Unlock()
	return mock.ListRowActionsFunc(ctx, rowID)
}

// ListRowActionsCalls gets all the calls that were made to ListRowActions.
func (mock *APIMock) ListRowActionsCalls() []struct {
	Ctx   context.Context
	RowID string
} {
	var calls []struct {
		Ctx   context.Context
		RowID string
	}
	mock.lockListRowActions.RLock()
	calls = mock.calls.ListRowActions
	mock.lockListRowActions.RUnlock()
	return calls
}

// ListRows calls ListRowsFunc.
func (mock *APIMock) ListRows(ctx context.Context, plotID string) ([]domain.Row, error) {
	if mock.ListRowsFunc == nil {
		panic("APIMock.ListRowsFunc: method is nil but API.ListRows was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PlotID string
	}{
		Ctx:    ctx,
		PlotID: plotID,
	}
	mock.lockListRows.Lock()
	mock.calls.ListRows = append(mock.calls.ListRows, callInfo)
	mock.lockListRows.Unlock()
	return mock.ListRowsFunc(ctx, plotID)
}

// ListRowsCalls gets all the calls that were made to ListRows.
func (mock *APIMock) ListRowsCalls() []struct {
	Ctx    context.Context
	PlotID string
} {
	var calls []struct {
		Ctx    context.Context
		PlotID string
	}
	mock.lockListRows.RLock()
	calls = mock.calls.ListRows
	mock.lockListRows.RUnlock()
	return calls
}

// ListSpecies calls ListSpeciesFunc.
func (mock *APIMock) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	if mock.ListSpeciesFunc == nil {
		panic("APIMock.ListSpeciesFunc: method is nil but API.ListSpecies was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSpecies.Lock()
	mock.calls.ListSpecies = append(mock.calls.ListSpecies, callInfo)
	mock.lockListSpecies.Unlock()
	return mock.ListSpeciesFunc(ctx)
}

// ListSpeciesCalls gets all the calls that were made to ListSpecies.
func (mock *APIMock) ListSpeciesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListSpecies.RLock()
	calls = mock.calls.ListSpecies
	mock.lockListSpecies.RUnlock()
	return calls
}

// UpdatePlant calls UpdatePlantFunc.
func (mock *APIMock) UpdatePlant(ctx context.Context, id string, in domain.PlantUpdate) (*domain.Plant, error) {
	if mock.UpdatePlantFunc == nil {
		panic("APIMock.UpdatePlantFunc: method is nil but API.UpdatePlant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		In  domain.PlantUpdate
	}{
		Ctx: ctx,
		ID:  id,
		In:  in,
	}
	mock.lockUpdatePlant.Lock()
	mock.calls.UpdatePlant = append(mock.calls.UpdatePlant, callInfo)
	mock.lockUpdatePlant.Unlock()
	return mock.UpdatePlantFunc(ctx, id, in)
}

// UpdatePlantCalls gets all the calls that were made to UpdatePlant.
func (mock *APIMock) UpdatePlantCalls() []struct {
	Ctx context.Context
	ID  string
	In  domain.PlantUpdate
} {
	var calls []struct {
		Ctx context.Context
		ID  string
		In  domain.PlantUpdate
	}
	mock.lockUpdatePlant.RLock()
	calls = mock.calls.UpdatePlant
	mock.lockUpdatePlant.RUnlock()
	return calls
}

// UpdatePlot calls UpdatePlotFunc.
func (mock *APIMock) UpdatePlot(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error) {
	if mock.UpdatePlotFunc == nil {
		panic("APIMock.UpdatePlotFunc: method is nil but API.UpdatePlot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		In  domain.PlotUpdate
	}{
		Ctx: ctx,
		ID:  id,
		In:  in,
	}
	mock.lockUpdatePlot.Lock()
	mock.calls.UpdatePlot = append(mock.calls.UpdatePlot, callInfo)
	mock.lockUpdatePlot.Unlock()
	return mock.UpdatePlotFunc(ctx, id, in)
}

// UpdatePlotCalls gets all the calls that were made to UpdatePlot.
func (mock *APIMock) UpdatePlotCalls() []struct {
	Ctx context.Context
	ID  string
	In  domain.PlotUpdate
} {
	var calls []struct {
		Ctx context.Context
		ID  string
		In  domain.PlotUpdate
	}
	mock.lockUpdatePlot.RLock()
	calls = mock.calls.UpdatePlot
	mock.lockUpdatePlot.RUnlock()
	return calls
}

// UpdateRow calls UpdateRowFunc.
func (mock *APIMock) UpdateRow(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error) {
	if mock.UpdateRowFunc == nil {
		panic("APIMock.UpdateRowFunc: method is nil but API.UpdateRow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		In  domain.RowUpdate
	}{
		Ctx: ctx,
		ID:  id,
		In:  in,
	}
	mock.lockUpdateRow.Lock()
	mock.calls.UpdateRow = append(mock.calls.UpdateRow, callInfo)
	mock.lockUpdateRow.Unlock()
	return mock.UpdateRowFunc(ctx, id, in)
}

// UpdateRowCalls gets all the calls that were made to UpdateRow.
func (mock *APIMock) UpdateRowCalls() []struct {
	Ctx context.Context
	ID  string
	In  domain.RowUpdate
} {
	var calls []struct {
		Ctx context.Context
		ID  string
		In  domain.RowUpdate
	}
	mock.lockUpdateRow.RLock()
	calls = mock.calls.UpdateRow
	mock.lockUpdateRow.RUnlock()
	return calls
}
