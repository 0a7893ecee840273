/*
Package tablestore provides a typed storage layer over Azure Table Storage,
combining composable filter expressions with stage-aware CRUD operations
across a production table and an optional development table.

The library has three layers:
  - filter: an immutable predicate tree compiled to the service's filter
    query grammar
  - datastore/azt: generic CRUD, batch and query operations over the Azure
    Tables SDK, routed by deployment stage
  - this root package: a Session that threads one configuration through any
    number of typed table stores

Basic Usage:

	cfg, _ := config.Load("tablestore.yaml")
	session, _ := tablestore.NewSession(cfg)

	users, _ := tablestore.OpenStore[User](session, "users")

	err := users.Insert(ctx, "USER#1", "PROFILE", func(e *storagemodels.Entity) {
	    e.Properties["Name"] = "Bob"
	    e.Properties["Age"] = int32(42)
	})

	adults, err := users.Query(ctx, readUser, &storagemodels.QueryParams{
	    Filter: filter.Ge("Age", int32(18)),
	})

Stage routing: when a development storage account is configured, writes and
deletes go to the development table — including in the prod stage — while
filtered queries always run against the production table. See the azt package
for details.

For more information, see the documentation at https://github.com/suparena/tablestore
*/
package tablestore
