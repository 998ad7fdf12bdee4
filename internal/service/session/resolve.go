package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// Resolve settles the loading state. An absent token, an expired JWT, or any
// failure of GET /auth/me ends unauthenticated with the token cleared; the
// causes are not distinguished. A settled state is returned as is.
//
// The only error is the caller's context: a cancelled resolution leaves the
// session loading and the token untouched. Concurrent callers share one
// check; when the caller that started it goes away, the rest start another.
func (s *Service) Resolve(ctx context.Context) (State, error) {
	for {
		s.mu.RLock()
		state, gen := s.state, s.gen
		s.mu.RUnlock()
		if state != StateLoading {
			return state, nil
		}

		ch := s.resolving.DoChan("resolve", func() (any, error) {
			return nil, s.resolve(ctx, gen)
		})
		select {
		case <-ctx.Done():
			return StateLoading, ctx.Err()
		case res := <-ch:
			if res.Err == nil {
				return s.State(), nil
			}
			if err := ctx.Err(); err != nil {
				return StateLoading, err
			}
		}
	}
}

func (s *Service) resolve(ctx context.Context, gen uint64) error {
	token, ok, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		s.log.ErrorContext(ctx, "read token failed", slog.String("error", err.Error()))
		s.settle(gen, StateUnauthenticated, nil)
		return nil
	}
	if !ok || token == "" {
		s.settle(gen, StateUnauthenticated, nil)
		return nil
	}

	if s.expired(token) {
		s.log.InfoContext(ctx, "stored token expired")
		s.drop(ctx, gen)
		return nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		s.log.WarnContext(ctx, "session check failed", slog.String("error", err.Error()))
		s.drop(ctx, gen)
		return nil
	}

	if s.settle(gen, StateAuthenticated, user) {
		s.log.InfoContext(ctx, "session resolved", slog.String("user_id", user.ID))
	}
	return nil
}

// drop clears the stored token and marks the session unauthenticated.
func (s *Service) drop(ctx context.Context, gen uint64) {
	if !s.settle(gen, StateUnauthenticated, nil) {
		return
	}
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		s.log.ErrorContext(ctx, "clear token failed", slog.String("error", err.Error()))
	}
}

// expired reports whether token is a JWT whose exp claim has passed. The
// signature is not verified; the server remains the authority. Opaque tokens
// and JWTs without exp are never considered expired here.
func (s *Service) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !s.clock.Now().Before(exp.Time)
}
