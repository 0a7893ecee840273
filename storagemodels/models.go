/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/filter"
)

// Entity is a single Table Storage row: partition/row keys plus arbitrary
// typed properties. It is the unit the store reads and writes.
type Entity = aztables.EDMEntity

// NewEntity returns an entity keyed by the given partition and row keys with
// an empty property bag.
func NewEntity(partitionKey, rowKey string) *Entity {
	return &Entity{
		Entity: aztables.Entity{
			PartitionKey: partitionKey,
			RowKey:       rowKey,
		},
		Properties: map[string]any{},
	}
}

// QueryParams defines parameters for a table query or point lookup.
// Used for both regular queries and streaming queries.
type QueryParams struct {
	// Filter is the predicate compiled into the query's filter clause.
	// A nil or all-empty filter means the clause is omitted entirely.
	Filter filter.Filter
	// PartitionKey and RowKey identify a single entity for point lookups.
	PartitionKey *string
	RowKey       *string
	// PageSize is an optional per-page item count hint.
	PageSize *int32
	// Select limits the properties returned by the service.
	Select []string
}

// WithFilter returns a copy of the params carrying the given filter.
func (p QueryParams) WithFilter(f filter.Filter) *QueryParams {
	p.Filter = f
	return &p
}

// WithPointKeys returns a copy of the params carrying point-lookup keys.
func (p QueryParams) WithPointKeys(partitionKey, rowKey string) *QueryParams {
	p.PartitionKey = &partitionKey
	p.RowKey = &rowKey
	return &p
}
