// Package session owns the client's authentication state: the persisted
// token and the user it belongs to.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// TokenKey is the storage key of the bearer token.
const TokenKey = "token"

// authAPI defines the remote auth endpoints needed by the session service.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}

// kvStore defines the persisted key/value store holding the token.
type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// State is the session state machine: loading → authenticated | unauthenticated.
type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "loading"
	}
}

// Service implements session operations. One instance is shared by every
// surface of the process.
type Service struct {
	log   *slog.Logger
	api   authAPI
	store kvStore
	clock clockwork.Clock

	resolving singleflight.Group

	mu    sync.RWMutex
	state State
	user  *domain.User
	// gen is bumped by Login, Logout and Reload so that a resolution started
	// before them cannot overwrite their outcome.
	gen uint64
}

// NewService creates a session service in the loading state.
func NewService(logger *slog.Logger, api authAPI, store kvStore, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		log:   logger.With("service", "session"),
		api:   api,
		store: store,
		clock: clock,
		state: StateLoading,
	}
}

// State returns the current state without resolving it.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// CurrentUser returns the cached user, or nil unless authenticated.
func (s *Service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated {
		return nil
	}
	return s.user
}

// Reload forgets the cached verdict so the next Resolve checks the stored
// token again, as a page reload would.
func (s *Service) Reload() {
	s.mu.Lock()
	s.gen++
	s.state = StateLoading
	s.user = nil
	s.mu.Unlock()
}

func (s *Service) settle(gen uint64, state State, user *domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.state = state
	s.user = user
	return true
}
