/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"fmt"
	"sync"

	"github.com/suparena/tablestore/config"
	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/datastore/azt"
)

// Session threads one storage configuration through any number of typed
// table stores. Stores are opened lazily and cached per table name for the
// life of the session.
type Session struct {
	cfg *config.Config

	mu     sync.RWMutex
	stores map[string]any
}

// NewSession creates a session over the given configuration.
func NewSession(cfg *config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		cfg:    cfg,
		stores: make(map[string]any),
	}, nil
}

// SessionFromEnv builds a session from environment variables.
func SessionFromEnv() (*Session, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewSession(cfg)
}

// Stage returns the session's deployment stage.
func (s *Session) Stage() config.Stage {
	return s.cfg.Stage
}

// OpenStore returns the typed store for a table, creating and caching it on
// first use. The cached store is shared by all subsequent calls for the same
// table and type.
func OpenStore[T any](s *Session, tableName string) (datastore.DataStore[T], error) {
	key := storeKey[T](tableName)

	s.mu.RLock()
	cached, ok := s.stores[key]
	s.mu.RUnlock()
	if ok {
		return cached.(datastore.DataStore[T]), nil
	}

	store, err := azt.NewFromConfig[T](s.cfg, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to open store for table %q: %w", tableName, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another caller may have raced us here; keep the first store.
	if cached, ok := s.stores[key]; ok {
		return cached.(datastore.DataStore[T]), nil
	}
	s.stores[key] = store
	return store, nil
}

// RegisterStore attaches a pre-built store (for example a mock) to the
// session under the given table name.
func RegisterStore[T any](s *Session, tableName string, ds datastore.DataStore[T]) error {
	key := storeKey[T](tableName)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.stores[key]; exists {
		return fmt.Errorf("store for table %q already registered", tableName)
	}
	s.stores[key] = ds
	return nil
}

// Tables lists the table names with opened stores.
func (s *Session) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for k := range s.stores {
		name := tableNameFromKey(k)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func storeKey[T any](tableName string) string {
	var zero T
	return fmt.Sprintf("%s|%T", tableName, zero)
}

func tableNameFromKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return key[:i]
		}
	}
	return key
}
