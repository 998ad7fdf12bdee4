package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/farmdash/internal/domain"
)

// Login authenticates with the API and persists the returned token.
// When the response carries no user the session stays loading and the next
// Resolve fetches it.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.api.Login(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		s.log.InfoContext(ctx, "login rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("session.Login: %w", err)
	}

	if err := s.store.Set(ctx, TokenKey, res.Token); err != nil {
		return nil, fmt.Errorf("session.Login: store token: %w", err)
	}

	s.mu.Lock()
	s.gen++
	if res.User != nil {
		s.state = StateAuthenticated
	} else {
		s.state = StateLoading
	}
	s.user = res.User
	s.mu.Unlock()

	if res.User != nil {
		s.log.InfoContext(ctx, "user logged in", slog.String("user_id", res.User.ID))
	}
	return res.User, nil
}
