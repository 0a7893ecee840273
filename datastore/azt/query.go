/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/filter"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/storagemodels"
)

// defaultPageSize is the per-page item hint sent with every query unless the
// caller overrides it.
const defaultPageSize int32 = 1000

// listOptions lowers query params into service list options. An absent
// filter omits the clause entirely; the service then returns everything.
func listOptions(params *storagemodels.QueryParams) *aztables.ListEntitiesOptions {
	opts := &aztables.ListEntitiesOptions{Top: to.Ptr(defaultPageSize)}
	if params == nil {
		return opts
	}
	if params.PageSize != nil {
		opts.Top = params.PageSize
	}
	if q, ok := filter.Compile(params.Filter); ok {
		opts.Filter = &q
	}
	if len(params.Select) > 0 {
		sel := strings.Join(params.Select, ",")
		opts.Select = &sel
	}
	return opts
}

// Query runs the filter in params against the production table, materializes
// every page and projects each entity through reader.
//
// Queries always target the production table regardless of stage; see
// resolveTarget.
func (s *AzureTableStore[T]) Query(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams) ([]T, error) {
	client := s.client(resolveTarget(s.stage, s.dev != nil, opQuery))

	pager := client.NewListEntitiesPager(listOptions(params))

	var results []T
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		for _, raw := range page.Entities {
			var ent storagemodels.Entity
			if err := json.Unmarshal(raw, &ent); err != nil {
				return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			item, err := project(&ent, reader)
			if err != nil {
				return nil, fmt.Errorf("failed to project entity (%q, %q): %w", ent.PartitionKey, ent.RowKey, err)
			}
			results = append(results, item)
		}
	}
	return results, nil
}

// project applies the caller's reader, falling back to the reader registered
// for the entity's EntityKind property when no reader is supplied. The
// fallback supports heterogeneous tables where each row names its own kind.
func project[T any](ent *storagemodels.Entity, reader datastore.Reader[T]) (T, error) {
	if reader != nil {
		return reader(ent)
	}

	var zero T
	kind, _ := ent.Properties["EntityKind"].(string)
	fn, err := registry.GetReader(kind)
	if err != nil {
		return zero, err
	}
	obj, err := fn(ent)
	if err != nil {
		return zero, err
	}
	item, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("registered reader for kind %q produced %T, want %T", kind, obj, zero)
	}
	return item, nil
}

// QueryDirect is Query with failures escalated to panics, for callers that
// treat a failed query as unrecoverable.
func (s *AzureTableStore[T]) QueryDirect(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams) []T {
	results, err := s.Query(ctx, reader, params)
	if err != nil {
		panic(fmt.Sprintf("tablestore: query against table %q failed: %v", s.table, err))
	}
	return results
}
