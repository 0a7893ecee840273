/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides mock implementations of the DataStore interface for testing
package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[T] for testing.
// Entities live in an in-memory map keyed by partition and row key.
type DataStore[T any] struct {
	mu          sync.RWMutex
	entities    map[string]*storagemodels.Entity
	keyFunc     func(item T) (string, string, error)
	queryFunc   func(ctx context.Context, params *storagemodels.QueryParams) ([]*storagemodels.Entity, error)
	insertError error
	deleteError error
	batchError  error
}

// New creates a new mock DataStore
func New[T any]() *DataStore[T] {
	return &DataStore[T]{
		entities: make(map[string]*storagemodels.Entity),
	}
}

// WithKeyFunc sets a custom function to derive keys from items in batch
// operations. Without it, the registry key map for T is used.
func (m *DataStore[T]) WithKeyFunc(f func(T) (string, string, error)) *DataStore[T] {
	m.keyFunc = f
	return m
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore[T]) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]*storagemodels.Entity, error)) *DataStore[T] {
	m.queryFunc = f
	return m
}

// WithInsertError makes Insert operations return an error
func (m *DataStore[T]) WithInsertError(err error) *DataStore[T] {
	m.insertError = err
	return m
}

// WithDeleteError makes Delete operations return an error
func (m *DataStore[T]) WithDeleteError(err error) *DataStore[T] {
	m.deleteError = err
	return m
}

// WithBatchError makes batch operations return an error
func (m *DataStore[T]) WithBatchError(err error) *DataStore[T] {
	m.batchError = err
	return m
}

func entityKey(partitionKey, rowKey string) string {
	return partitionKey + "|" + rowKey
}

func (m *DataStore[T]) itemKeys(item T) (string, string, error) {
	if m.keyFunc != nil {
		return m.keyFunc(item)
	}
	return registry.ExpandKeysFor(item)
}

// Insert upserts a single entity with full-replace semantics.
func (m *DataStore[T]) Insert(ctx context.Context, partitionKey, rowKey string, build datastore.EntityBuilder) error {
	if m.insertError != nil {
		return m.insertError
	}

	ent := storagemodels.NewEntity(partitionKey, rowKey)
	if build != nil {
		build(ent)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entities[entityKey(partitionKey, rowKey)] = ent
	return nil
}

// Delete removes a single entity; deleting an absent entity succeeds.
func (m *DataStore[T]) Delete(ctx context.Context, partitionKey, rowKey string) error {
	if m.deleteError != nil {
		return m.deleteError
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entities, entityKey(partitionKey, rowKey))
	return nil
}

// InsertBatch upserts all items atomically: any key derivation failure
// leaves the store untouched.
func (m *DataStore[T]) InsertBatch(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if m.batchError != nil {
		return m.batchError
	}

	staged := make(map[string]*storagemodels.Entity, len(items))
	for _, item := range items {
		pk, rk, err := m.itemKeys(item)
		if err != nil {
			return err
		}
		ent := storagemodels.NewEntity(pk, rk)
		ent.Properties["_mockItem"] = item
		staged[entityKey(pk, rk)] = ent
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range staged {
		m.entities[k] = v
	}
	return nil
}

// DeleteBatch removes all items atomically.
func (m *DataStore[T]) DeleteBatch(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if m.batchError != nil {
		return m.batchError
	}

	keys := make([]string, 0, len(items))
	for _, item := range items {
		pk, rk, err := m.itemKeys(item)
		if err != nil {
			return err
		}
		keys = append(keys, entityKey(pk, rk))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.entities, k)
	}
	return nil
}

// Query projects every stored (or queryFunc-provided) entity through reader.
func (m *DataStore[T]) Query(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams) ([]T, error) {
	entities, err := m.list(ctx, params)
	if err != nil {
		return nil, err
	}

	var results []T
	for _, ent := range entities {
		item, err := reader(ent)
		if err != nil {
			return nil, fmt.Errorf("failed to project entity (%q, %q): %w", ent.PartitionKey, ent.RowKey, err)
		}
		results = append(results, item)
	}
	return results, nil
}

// QueryDirect is Query with failures escalated to panics.
func (m *DataStore[T]) QueryDirect(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams) []T {
	results, err := m.Query(ctx, reader, params)
	if err != nil {
		panic(fmt.Sprintf("mock: query failed: %v", err))
	}
	return results
}

// GetOne retrieves a single entity by its keys; nil, nil when absent.
func (m *DataStore[T]) GetOne(ctx context.Context, reader datastore.Reader[T], partitionKey, rowKey string) (*T, error) {
	m.mu.RLock()
	ent, ok := m.entities[entityKey(partitionKey, rowKey)]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	item, err := reader(ent)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Stream emits every stored entity on a channel.
func (m *DataStore[T]) Stream(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	go func() {
		defer close(resultCh)

		entities, err := m.list(ctx, params)
		if err != nil {
			resultCh <- storagemodels.StreamResult[T]{Error: err}
			return
		}

		for i, ent := range entities {
			item, err := reader(ent)
			select {
			case resultCh <- storagemodels.StreamResult[T]{
				Item:  item,
				Raw:   ent,
				Error: err,
				Meta:  storagemodels.StreamMeta{Index: int64(i), PageNumber: 1},
			}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return resultCh
}

func (m *DataStore[T]) list(ctx context.Context, params *storagemodels.QueryParams) ([]*storagemodels.Entity, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	entities := make([]*storagemodels.Entity, 0, len(m.entities))
	for _, ent := range m.entities {
		entities = append(entities, ent)
	}
	return entities, nil
}

// Count returns the number of stored entities.
func (m *DataStore[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entities)
}
