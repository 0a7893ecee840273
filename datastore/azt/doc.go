/*
Package azt provides an Azure Table Storage implementation of the DataStore interface.

The AzureTableStore supports:
  - A production table plus an optional development table, selected per call
    by a stage-aware routing policy
  - Typed filter expressions compiled to the service's query grammar
  - Atomic batch transactions with key derivation from registered key maps
  - Paged queries and channel-based streaming
  - Create-if-missing table provisioning with bounded retry

Routing:
All routing decisions go through one policy. Filtered queries always hit the
production table. Writes and deletes prefer the development table whenever
one is configured — even in the prod stage — and become no-ops in the dev
stage when no development table exists. This asymmetry is preserved
deliberately; see resolveTarget.

Filtering:

	params := &storagemodels.QueryParams{
	    Filter: filter.And(
	        filter.Eq("Status", "active"),
	        filter.Ge("UpdatedAt", time.Now().AddDate(0, 0, -7)),
	    ),
	}
	users, err := store.Query(ctx, readUser, params)

Provisioning:
Construction resolves the named table on every configured account, creating
it when missing. A table name freshly deleted on the service side stays
reserved briefly; creation retries on a fixed delay with a finite budget and
honors context cancellation. Resolved handles are cached process-wide and
never evicted.

For usage examples, see the package tests.
*/
package azt
