package loader

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/domain"
)

var _ entityAPI = &entityAPIMock{}

type entityAPIMock struct {
	GetFarmFunc  func(ctx context.Context, id string) (*domain.Farm, error)
	GetPlantFunc func(ctx context.Context, id string) (*domain.Plant, error)
	GetPlotFunc  func(ctx context.Context, id string) (*domain.Plot, error)
	GetRowFunc   func(ctx context.Context, id string) (*domain.Row, error)

	calls struct {
		GetFarm []struct {
			Ctx context.Context
			ID  string
		}
		GetPlant []struct {
			Ctx context.Context
			ID  string
		}
		GetPlot []struct {
			Ctx context.Context
			ID  string
		}
		GetRow []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetFarm  sync.RWMutex
	lockGetPlant sync.RWMutex
	lockGetPlot  sync.RWMutex
	lockGetRow   sync.RWMutex
}

func (mock *entityAPIMock) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	if mock.GetFarmFunc == nil {
		panic("entityAPIMock.GetFarmFunc: method is nil but entityAPI.GetFarm was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetFarm.Lock()
	mock.calls.GetFarm = append(mock.calls.GetFarm, callInfo)
	mock.lockGetFarm.Unlock()
	return mock.GetFarmFunc(ctx, id)
}

func (mock *entityAPIMock) GetFarmCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetFarm.RLock()
	calls := mock.calls.GetFarm
	mock.lockGetFarm.RUnlock()
	return calls
}

func (mock *entityAPIMock) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	if mock.GetPlantFunc == nil {
		panic("entityAPIMock.GetPlantFunc: method is nil but entityAPI.GetPlant was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetPlant.Lock()
	mock.calls.GetPlant = append(mock.calls.GetPlant, callInfo)
	mock.lockGetPlant.Unlock()
	return mock.GetPlantFunc(ctx, id)
}

func (mock *entityAPIMock) GetPlantCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetPlant.RLock()
	calls := mock.calls.GetPlant
	mock.lockGetPlant.RUnlock()
	return calls
}

func (mock *entityAPIMock) GetPlot(ctx context.Context, id string) (*domain.Plot, error) {
	if mock.GetPlotFunc == nil {
		panic("entityAPIMock.GetPlotFunc: method is nil but entityAPI.GetPlot was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetPlot.Lock()
	mock.calls.GetPlot = append(mock.calls.GetPlot, callInfo)
	mock.lockGetPlot.Unlock()
	return mock.GetPlotFunc(ctx, id)
}

func (mock *entityAPIMock) GetPlotCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetPlot.RLock()
	calls := mock.calls.GetPlot
	mock.lockGetPlot.RUnlock()
	return calls
}

func (mock *entityAPIMock) GetRow(ctx context.Context, id string) (*domain.Row, error) {
	if mock.GetRowFunc == nil {
		panic("entityAPIMock.GetRowFunc: method is nil but entityAPI.GetRow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetRow.Lock()
	mock.calls.GetRow = append(mock.calls.GetRow, callInfo)
	mock.lockGetRow.Unlock()
	return mock.GetRowFunc(ctx, id)
}

func (mock *entityAPIMock) GetRowCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetRow.RLock()
	calls := mock.calls.GetRow
	mock.lockGetRow.RUnlock()
	return calls
}
