package view

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/service/loader"
	"github.com/heartmarshall/farmdash/internal/service/route"
)

var _ chainLoader = &chainLoaderMock{}

type chainLoaderMock struct {
	LoadFunc func(ctx context.Context, r route.Route) loader.Result

	calls struct {
		Load []struct {
			Ctx context.Context
			R   route.Route
		}
	}
	lockLoad sync.RWMutex
}

func (mock *chainLoaderMock) Load(ctx context.Context, r route.Route) loader.Result {
	if mock.LoadFunc == nil {
		panic("chainLoaderMock.LoadFunc: method is nil but chainLoader.Load was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   route.Route
	}{
		Ctx: ctx,
		R:   r,
	}
	mock.lockLoad.Lock()
	mock.calls.Load = append(mock.calls.Load, callInfo)
	mock.lockLoad.Unlock()
	return mock.LoadFunc(ctx, r)
}

func (mock *chainLoaderMock) LoadCalls() []struct {
	Ctx context.Context
	R   route.Route
} {
	var calls []struct {
		Ctx context.Context
		R   route.Route
	}
	mock.lockLoad.RLock()
	calls = mock.calls.Load
	mock.lockLoad.RUnlock()
	return calls
}
