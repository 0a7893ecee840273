/*
Package datastore defines the core interfaces for tablestore's data persistence layer.

The main interface is DataStore[T], which provides generic CRUD and query
operations for any entity type T:

	type DataStore[T any] interface {
	    Insert(ctx context.Context, partitionKey, rowKey string, build EntityBuilder) error
	    Delete(ctx context.Context, partitionKey, rowKey string) error
	    InsertBatch(ctx context.Context, items []T) error
	    DeleteBatch(ctx context.Context, items []T) error
	    Query(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams) ([]T, error)
	    QueryDirect(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams) []T
	    GetOne(ctx context.Context, reader Reader[T], partitionKey, rowKey string) (*T, error)
	    Stream(ctx context.Context, reader Reader[T], params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	}

Query and QueryDirect run the same filtered query; they differ only in failure
handling. Query returns service failures as errors for callers that recover;
QueryDirect panics, for callers that treat a failed query as unrecoverable.

Implementations:
  - azt: Azure Table Storage implementation with dev/prod stage routing
  - mock: In-memory mock implementation for testing

The package uses Go generics to ensure type safety at compile time while
maintaining flexibility for different storage backends.
*/
package datastore
