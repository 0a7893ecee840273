/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/tablestore/storagemodels"
)

// Reader projects a raw table entity into a value of type T.
type Reader[T any] func(e *storagemodels.Entity) (T, error)

// EntityBuilder populates the properties of a freshly keyed entity before it
// is written.
type EntityBuilder func(e *storagemodels.Entity)

type DataStore[T any] interface {
	// Insert upserts a single entity with full-replace semantics.
	Insert(ctx context.Context, partitionKey, rowKey string, build EntityBuilder) error

	// Delete removes a single entity. Deleting an absent entity is a success.
	Delete(ctx context.Context, partitionKey, rowKey string) error

	// InsertBatch upserts the items as one atomic transaction.
	// An empty slice is a no-op success.
	InsertBatch(ctx context.Context, items []T) error

	// DeleteBatch removes the items as one atomic transaction.
	// An empty slice is a no-op success.
	DeleteBatch(ctx context.Context, items []T) error

	// Query runs the filter in params against the table and projects every
	// matching entity through reader. Service failures are returned as errors.
	Query(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams) ([]T, error)

	// QueryDirect is Query with failures escalated to panics.
	QueryDirect(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams) []T

	// GetOne retrieves a single entity by its keys. It returns nil, nil when
	// no entity exists; absence is never an error.
	GetOne(ctx context.Context, reader Reader[T], partitionKey, rowKey string) (*T, error)

	// Stream pages through the query results and emits projected items on a
	// channel as they arrive.
	Stream(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
}
