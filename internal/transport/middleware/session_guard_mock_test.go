package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/service/guard"
)

var _ sessionGuard = &sessionGuardMock{}

type sessionGuardMock struct {
	CheckFunc func(ctx context.Context, requestedPath string) (guard.Decision, error)

	calls struct {
		Check []struct {
			Ctx           context.Context
			RequestedPath string
		}
	}
	lockCheck sync.RWMutex
}

func (mock *sessionGuardMock) Check(ctx context.Context, requestedPath string) (guard.Decision, error) {
	if mock.CheckFunc == nil {
		panic("sessionGuardMock.CheckFunc: method is nil but sessionGuard.Check was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		RequestedPath string
	}{
		Ctx:           ctx,
		RequestedPath: requestedPath,
	}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(ctx, requestedPath)
}

func (mock *sessionGuardMock) CheckCalls() []struct {
	Ctx           context.Context
	RequestedPath string
} {
	var calls []struct {
		Ctx           context.Context
		RequestedPath string
	}
	mock.lockCheck.RLock()
	calls = mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}
