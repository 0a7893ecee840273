/*
Package errors provides semantic error types for the tablestore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("entity not found")
	    ErrNoStorageAccount = errors.New("no storage account configured")
	    ErrNoTable          = errors.New("no table resolved")
	    ErrNoPointKeys      = errors.New("no partition/row keys set")
	    ErrInvalidInput     = errors.New("invalid input")
	    ErrBatchFailed      = errors.New("batch transaction failed")
	    ErrNoKeyMap         = errors.New("no key map registered for type")
	)

Usage:

	// Check error type
	if err := store.InsertBatch(ctx, items); err != nil {
	    if errors.IsBatchFailed(err) {
	        // The whole transaction was rejected; nothing was written.
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("USER#1", "PROFILE")
	err := errors.NewValidationError("connectionString", "must not be empty")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
