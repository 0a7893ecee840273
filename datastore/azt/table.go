/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package azt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
)

// Service error codes observed on CreateTable.
const (
	codeTableAlreadyExists = "TableAlreadyExists"
	codeTableBeingDeleted  = "TableBeingDeleted"
)

// RetryPolicy governs the create-if-missing retry loop. After a table is
// deleted the service keeps its name reserved for a while and rejects
// re-creation with TableBeingDeleted; the loop waits out that window.
type RetryPolicy struct {
	// Interval is the fixed delay between creation attempts.
	Interval time.Duration
	// MaxAttempts bounds the loop. The reservation window is usually under
	// a minute, so the default budget is generous but finite.
	MaxAttempts int

	// sleep is injectable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy waits up to roughly 15 minutes for a reserved name.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Interval:    2 * time.Second,
		MaxAttempts: 450,
	}
}

func (p RetryPolicy) wait(ctx context.Context) error {
	if p.sleep != nil {
		return p.sleep(ctx, p.Interval)
	}
	timer := time.NewTimer(p.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// tableClients caches resolved table handles for the life of the process,
// keyed by account connection string and table name. Entries are never
// evicted; the table population is expected to be small and static. A race
// on first access may create the table twice, which is harmless because
// creation is idempotent — LoadOrStore keeps the first handle.
var tableClients sync.Map

// resolveTable returns a handle for the named table on the given account,
// creating the table if it does not exist yet.
func resolveTable(ctx context.Context, svc *aztables.ServiceClient, connStr, tableName string, retry RetryPolicy) (*aztables.Client, error) {
	key := connStr + "|" + tableName
	if v, ok := tableClients.Load(key); ok {
		return v.(*aztables.Client), nil
	}

	client := svc.NewClient(tableName)
	if err := createTable(ctx, client, tableName, retry); err != nil {
		return nil, err
	}

	actual, _ := tableClients.LoadOrStore(key, client)
	return actual.(*aztables.Client), nil
}

func createTable(ctx context.Context, client *aztables.Client, tableName string, retry RetryPolicy) error {
	attempts := retry.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 1; ; attempt++ {
		_, err := client.CreateTable(ctx, nil)
		if err == nil {
			return nil
		}

		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) {
			switch respErr.ErrorCode {
			case codeTableAlreadyExists:
				return nil
			case codeTableBeingDeleted:
				if attempt >= attempts {
					return fmt.Errorf("table %q still reserved after %d attempts: %w", tableName, attempt, err)
				}
				if werr := retry.wait(ctx); werr != nil {
					return fmt.Errorf("table %q creation interrupted: %w", tableName, werr)
				}
				continue
			}
		}
		return fmt.Errorf("failed to create table %q: %w", tableName, err)
	}
}

// isNotFound reports whether err is the service's 404 response.
func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == 404
}
