/*
Package storagemodels defines the data structures used throughout tablestore.

Key Types:

QueryParams:
Parameters for querying the datastore or performing a point lookup:

	params := &storagemodels.QueryParams{
	    Filter: filter.And(
	        filter.Eq("Status", "active"),
	        filter.Gt("Score", int64(100)),
	    ),
	    PageSize: to.Ptr(int32(500)),
	}

StreamResult:
Results from streaming operations with metadata:

	type StreamResult[T any] struct {
	    Item  T          // The projected item
	    Raw   *Entity    // Raw table entity
	    Error error      // Item-specific error, if any
	    Meta  StreamMeta // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}

These types provide a consistent interface across different storage implementations.
*/
package storagemodels
