/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"

	tserrors "github.com/suparena/tablestore/errors"
	"github.com/suparena/tablestore/registry"
	"github.com/suparena/tablestore/storagemodels"
)

// InsertBatch upserts the items as one atomic transaction with full-replace
// semantics. Keys are derived from the key map registered for T. The service
// applies the batch all-or-nothing and requires every item to share one
// partition key. An empty slice is a no-op success.
func (s *AzureTableStore[T]) InsertBatch(ctx context.Context, items []T) error {
	return s.submitBatch(ctx, aztables.TransactionTypeInsertReplace, items)
}

// DeleteBatch removes the items as one atomic transaction. Same key
// derivation and atomicity rules as InsertBatch.
func (s *AzureTableStore[T]) DeleteBatch(ctx context.Context, items []T) error {
	return s.submitBatch(ctx, aztables.TransactionTypeDelete, items)
}

func (s *AzureTableStore[T]) submitBatch(ctx context.Context, action aztables.TransactionType, items []T) error {
	if len(items) == 0 {
		return nil
	}

	tgt := resolveTarget(s.stage, s.dev != nil, opWrite)
	if tgt == targetNone {
		return nil
	}

	actions := make([]aztables.TransactionAction, 0, len(items))
	for _, item := range items {
		payload, err := batchEntity(item, action)
		if err != nil {
			return err
		}
		actions = append(actions, aztables.TransactionAction{
			ActionType: action,
			Entity:     payload,
		})
	}

	if _, err := s.client(tgt).SubmitTransaction(ctx, actions, nil); err != nil {
		return tserrors.NewBatchError(s.table, len(actions), err)
	}
	return nil
}

// batchEntity maps a domain item to the wire entity for one batch action.
// Deletes only need the keys; upserts carry the item's fields as properties.
func batchEntity[T any](item T, action aztables.TransactionType) ([]byte, error) {
	pk, rk, err := registry.ExpandKeysFor(item)
	if err != nil {
		return nil, err
	}

	ent := storagemodels.NewEntity(pk, rk)
	if action != aztables.TransactionTypeDelete {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal item: %w", err)
		}
		if err := json.Unmarshal(raw, &ent.Properties); err != nil {
			return nil, fmt.Errorf("failed to map item fields: %w", err)
		}
	}

	payload, err := json.Marshal(ent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return payload, nil
}
