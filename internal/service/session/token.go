package session

import (
	"context"
	"fmt"
)

// TokenStore exposes the persisted token as a bearer token source for the
// API client. It reads storage on every call.
type TokenStore struct {
	store kvStore
}

// NewTokenStore wraps store.
func NewTokenStore(store kvStore) *TokenStore {
	return &TokenStore{store: store}
}

// Token returns the stored token or "" when none is stored.
func (t *TokenStore) Token(ctx context.Context) (string, error) {
	tok, _, err := t.store.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return tok, nil
}
