/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	"github.com/suparena/tablestore/config"
	"github.com/suparena/tablestore/datastore"
	tserrors "github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/storagemodels"
)

// AzureTableStore implements datastore.DataStore[T] by using Azure Table
// Storage as the underlying data store. It can hold a production table and
// an optional development table; see resolveTarget for how calls pick one.
type AzureTableStore[T any] struct {
	prod  *aztables.Client
	dev   *aztables.Client
	table string
	stage config.Stage
	retry RetryPolicy
}

// NewAzureTableStore constructs a store backed by a single production
// account. The table is created if it does not exist.
func NewAzureTableStore[T any](prodConnStr, tableName string) (*AzureTableStore[T], error) {
	return NewFromConfig[T](&config.Config{
		ProdConnectionString: prodConnStr,
		Stage:                config.StageProd,
	}, tableName)
}

// NewAzureTableStoreWithDev constructs a store with both a production and a
// development account.
func NewAzureTableStoreWithDev[T any](prodConnStr, devConnStr string, stage config.Stage, tableName string) (*AzureTableStore[T], error) {
	return NewFromConfig[T](&config.Config{
		ProdConnectionString: prodConnStr,
		DevConnectionString:  devConnStr,
		Stage:                stage,
	}, tableName)
}

// NewFromConfig constructs a store from a session configuration, resolving
// the named table on each configured account.
func NewFromConfig[T any](cfg *config.Config, tableName string) (*AzureTableStore[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &AzureTableStore[T]{
		table: tableName,
		stage: cfg.Stage,
		retry: DefaultRetryPolicy(),
	}

	ctx := context.Background()

	prodSvc, err := aztables.NewServiceClientFromConnectionString(cfg.ProdConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open prod storage account: %w", err)
	}
	s.prod, err = resolveTable(ctx, prodSvc, cfg.ProdConnectionString, tableName, s.retry)
	if err != nil {
		return nil, err
	}

	if cfg.HasDev() {
		devSvc, err := aztables.NewServiceClientFromConnectionString(cfg.DevConnectionString, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to open dev storage account: %w", err)
		}
		s.dev, err = resolveTable(ctx, devSvc, cfg.DevConnectionString, tableName, s.retry)
		if err != nil {
			return nil, err
		}
	}

	log.Printf("tablestore: table %q resolved (stage=%s, dev=%v)", tableName, cfg.Stage, s.dev != nil)
	return s, nil
}

// client returns the handle for a resolved target. A nil handle here is a
// programmer error (the constructor always resolves prod), so it escalates.
func (s *AzureTableStore[T]) client(tgt target) *aztables.Client {
	var c *aztables.Client
	switch tgt {
	case targetProd:
		c = s.prod
	case targetDev:
		c = s.dev
	}
	if c == nil {
		panic(fmt.Sprintf("tablestore: %v for table %q", tserrors.ErrNoTable, s.table))
	}
	return c
}

// Insert upserts a single entity with full-replace semantics. The entity
// starts as an empty-keyed record and is populated by build.
func (s *AzureTableStore[T]) Insert(ctx context.Context, partitionKey, rowKey string, build datastore.EntityBuilder) error {
	tgt := resolveTarget(s.stage, s.dev != nil, opWrite)
	if tgt == targetNone {
		return nil
	}

	ent := storagemodels.NewEntity(partitionKey, rowKey)
	if build != nil {
		build(ent)
	}

	raw, err := json.Marshal(ent)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	_, err = s.client(tgt).UpsertEntity(ctx, raw, &aztables.UpsertEntityOptions{
		UpdateMode: aztables.UpdateModeReplace,
	})
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// Delete removes a single entity. An already absent entity is a success.
func (s *AzureTableStore[T]) Delete(ctx context.Context, partitionKey, rowKey string) error {
	tgt := resolveTarget(s.stage, s.dev != nil, opWrite)
	if tgt == targetNone {
		return nil
	}

	_, err := s.client(tgt).DeleteEntity(ctx, partitionKey, rowKey, nil)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete entity (%q, %q): %w", partitionKey, rowKey, err)
	}
	return nil
}

// GetOne retrieves a single entity by its keys and projects it through
// reader. It returns nil, nil when no entity exists.
func (s *AzureTableStore[T]) GetOne(ctx context.Context, reader datastore.Reader[T], partitionKey, rowKey string) (*T, error) {
	tgt := resolveTarget(s.stage, s.dev != nil, opPointRead)

	resp, err := s.client(tgt).GetEntity(ctx, partitionKey, rowKey, nil)
	if err != nil {
		if isNotFound(err) {
			// Not found: return nil, nil
			return nil, nil
		}
		return nil, fmt.Errorf("GetEntity error: %w", err)
	}

	var ent storagemodels.Entity
	if err := json.Unmarshal(resp.Value, &ent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	item, err := project(&ent, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to project entity (%q, %q): %w", partitionKey, rowKey, err)
	}
	return &item, nil
}

// Receive performs a point lookup using the keys carried in params. Calling
// it without both keys set is a programmer error and panics.
func (s *AzureTableStore[T]) Receive(ctx context.Context, reader datastore.Reader[T], params *storagemodels.QueryParams) (*T, error) {
	if params == nil || params.PartitionKey == nil || params.RowKey == nil {
		panic(fmt.Sprintf("tablestore: point lookup on table %q: %v", s.table, tserrors.ErrNoPointKeys))
	}
	return s.GetOne(ctx, reader, *params.PartitionKey, *params.RowKey)
}
