/*
Package registry manages key maps and entity readers for tablestore.

The registry system enables:
  - Deriving partition/row keys from domain items in batch operations
  - Fallback projection of heterogeneous query results by entity kind
  - Flexible key patterns through templates

Key Map Registry:
Associates Go types with table key templates:

	registry.RegisterKeyMap[User](registry.KeyMap{
	    PartitionKey: "USER#{ID}",
	    RowKey:       "PROFILE",
	})

Reader Registry:
Maps entity kind names to projection functions:

	registry.RegisterReader("User", func(e *storagemodels.Entity) (interface{}, error) {
	    return userFromEntity(e)
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
