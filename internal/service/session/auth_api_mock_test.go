package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/farmdash/internal/domain"
)

var _ authAPI = &authAPIMock{}

type authAPIMock struct {
	LoginFunc  func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	LogoutFunc func(ctx context.Context) error
	MeFunc     func(ctx context.Context) (*domain.User, error)

	calls struct {
		Login []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		Logout []struct {
			Ctx context.Context
		}
		Me []struct {
			Ctx context.Context
		}
	}
	lockLogin  sync.RWMutex
	lockLogout sync.RWMutex
	lockMe     sync.RWMutex
}

func (mock *authAPIMock) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("authAPIMock.LoginFunc: method is nil but authAPI.Login was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{Ctx: ctx, Email: email, Password: password}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, email, password)
}

func (mock *authAPIMock) LoginCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authAPIMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authAPIMock.LogoutFunc: method is nil but authAPI.Logout was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authAPIMock) LogoutCalls() []struct{ Ctx context.Context } {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authAPIMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authAPIMock.MeFunc: method is nil but authAPI.Me was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authAPIMock) MeCalls() []struct{ Ctx context.Context } {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}
