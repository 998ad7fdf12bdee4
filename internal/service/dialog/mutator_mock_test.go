package dialog

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/domain"
)

var _ Mutator = &MutatorMock{}

type MutatorMock struct {
	BatchCreatePlantsFunc func(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error)
	CreateActionFunc      func(ctx context.Context, in domain.ActionCreate) (*domain.Action, error)
	CreateFarmFunc        func(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error)
	CreatePlantFunc       func(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error)
	CreatePlotFunc        func(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error)
	CreateRowFunc         func(ctx context.Context, in domain.RowCreate) (*domain.Row, error)
	UpdatePlotFunc        func(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error)
	UpdateRowFunc         func(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error)

	calls struct {
		BatchCreatePlants []domain.PlantBatchCreate
		CreateAction      []domain.ActionCreate
		CreateFarm        []domain.FarmCreate
		CreatePlant       []domain.PlantCreate
		CreatePlot        []domain.PlotCreate
		CreateRow         []domain.RowCreate
		UpdatePlot        []struct {
			ID string
			In domain.PlotUpdate
		}
		UpdateRow []struct {
			ID string
			In domain.RowUpdate
		}
	}
	lock sync.RWMutex
}

func (mock *MutatorMock) BatchCreatePlants(ctx context.Context, in domain.PlantBatchCreate) ([]domain.Plant, error) {
	if mock.BatchCreatePlantsFunc == nil {
		panic("MutatorMock.BatchCreatePlantsFunc: method is nil but Mutator.BatchCreatePlants was just called")
	}
	mock.lock.Lock()
	mock.calls.BatchCreatePlants = append(mock.calls.BatchCreatePlants, in)
	mock.lock.Unlock()
	return mock.BatchCreatePlantsFunc(ctx, in)
}

func (mock *MutatorMock) BatchCreatePlantsCalls() []domain.PlantBatchCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BatchCreatePlants
}

func (mock *MutatorMock) CreateAction(ctx context.Context, in domain.ActionCreate) (*domain.Action, error) {
	if mock.CreateActionFunc == nil {
		panic("MutatorMock.CreateActionFunc: method is nil but Mutator.CreateAction was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateAction = append(mock.calls.CreateAction, in)
	mock.lock.Unlock()
	return mock.CreateActionFunc(ctx, in)
}

func (mock *MutatorMock) CreateActionCalls() []domain.ActionCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateAction
}

func (mock *MutatorMock) CreateFarm(ctx context.Context, in domain.FarmCreate) (*domain.Farm, error) {
	if mock.CreateFarmFunc == nil {
		panic("MutatorMock.CreateFarmFunc: method is nil but Mutator.CreateFarm was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateFarm = append(mock.calls.CreateFarm, in)
	mock.lock.Unlock()
	return mock.CreateFarmFunc(ctx, in)
}

func (mock *MutatorMock) CreateFarmCalls() []domain.FarmCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateFarm
}

func (mock *MutatorMock) CreatePlant(ctx context.Context, in domain.PlantCreate) (*domain.Plant, error) {
	if mock.CreatePlantFunc == nil {
		panic("MutatorMock.CreatePlantFunc: method is nil but Mutator.CreatePlant was just called")
	}
	mock.lock.Lock()
	mock.calls.CreatePlant = append(mock.calls.CreatePlant, in)
	mock.lock.Unlock()
	return mock.CreatePlantFunc(ctx, in)
}

func (mock *MutatorMock) CreatePlantCalls() []domain.PlantCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreatePlant
}

func (mock *MutatorMock) CreatePlot(ctx context.Context, in domain.PlotCreate) (*domain.Plot, error) {
	if mock.CreatePlotFunc == nil {
		panic("MutatorMock.CreatePlotFunc: method is nil but Mutator.CreatePlot was just called")
	}
	mock.lock.Lock()
	mock.calls.CreatePlot = append(mock.calls.CreatePlot, in)
	mock.lock.Unlock()
	return mock.CreatePlotFunc(ctx, in)
}

func (mock *MutatorMock) CreatePlotCalls() []domain.PlotCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreatePlot
}

func (mock *MutatorMock) CreateRow(ctx context.Context, in domain.RowCreate) (*domain.Row, error) {
	if mock.CreateRowFunc == nil {
		panic("MutatorMock.CreateRowFunc: method is nil but Mutator.CreateRow was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateRow = append(mock.calls.CreateRow, in)
	mock.lock.Unlock()
	return mock.CreateRowFunc(ctx, in)
}

func (mock *MutatorMock) CreateRowCalls() []domain.RowCreate {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateRow
}

func (mock *MutatorMock) UpdatePlot(ctx context.Context, id string, in domain.PlotUpdate) (*domain.Plot, error) {
	if mock.UpdatePlotFunc == nil {
		panic("MutatorMock.UpdatePlotFunc: method is nil but Mutator.UpdatePlot was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdatePlot = append(mock.calls.UpdatePlot, struct {
		ID string
		In domain.PlotUpdate
	}{id, in})
	mock.lock.Unlock()
	return mock.UpdatePlotFunc(ctx, id, in)
}

func (mock *MutatorMock) UpdatePlotCalls() []struct {
	ID string
	In domain.PlotUpdate
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdatePlot
}

func (mock *MutatorMock) UpdateRow(ctx context.Context, id string, in domain.RowUpdate) (*domain.Row, error) {
	if mock.UpdateRowFunc == nil {
		panic("MutatorMock.UpdateRowFunc: method is nil but Mutator.UpdateRow was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateRow = append(mock.calls.UpdateRow, struct {
		ID string
		In domain.RowUpdate
	}{id, in})
	mock.lock.Unlock()
	return mock.UpdateRowFunc(ctx, id, in)
}

func (mock *MutatorMock) UpdateRowCalls() []struct {
	ID string
	In domain.RowUpdate
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateRow
}
