package session

import (
	"context"
	"fmt"
	"log/slog"
)

// Logout notifies the API and always clears the local session, even when the
// API call fails.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.log.WarnContext(ctx, "logout call failed", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.gen++
	s.state = StateUnauthenticated
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("session.Logout: clear token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out")
	return nil
}
