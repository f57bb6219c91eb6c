// Package tokenstore keeps small client-side values, most importantly the
// auth token attached to live requests. Values are stored JSON-encoded.
package tokenstore

import (
	"context"
	"encoding/json"
	"sync"
)

// TokenKey is the key the auth token is stored under.
const TokenKey = "auth_token"

// Store is a key/value store for client-side state.
type Store interface {
	// Set stores value JSON-encoded under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error
	// Get decodes the value stored under key into out. It reports false when
	// the key is absent.
	Get(ctx context.Context, key string, out any) (bool, error)
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// SetToken stores the auth token.
func SetToken(ctx context.Context, s Store, token string) error {
	return s.Set(ctx, TokenKey, token)
}

// GetToken returns the auth token, or "" when none is stored.
func GetToken(ctx context.Context, s Store) (string, error) {
	var token string
	if _, err := s.Get(ctx, TokenKey, &token); err != nil {
		return "", err
	}
	return token, nil
}

// RemoveToken deletes the auth token.
func RemoveToken(ctx context.Context, s Store) error {
	return s.Remove(ctx, TokenKey)
}

// Memory is an in-process Store.
type Memory struct {
	mu   sync.RWMutex
	vals map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{vals: make(map[string][]byte)}
}

func (m *Memory) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.vals[key] = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(ctx context.Context, key string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	b, ok := m.vals[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *Memory) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.vals, key)
	m.mu.Unlock()
	return nil
}
