/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrNoStorageAccount is returned when no storage account has been configured
	ErrNoStorageAccount = errors.New("no storage account configured")

	// ErrNoTable is returned when no table has been resolved for the session
	ErrNoTable = errors.New("no table resolved")

	// ErrNoPointKeys is returned when a point lookup is attempted without keys
	ErrNoPointKeys = errors.New("no partition/row keys set")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrBatchFailed is returned when a batch transaction is rejected as a whole
	ErrBatchFailed = errors.New("batch transaction failed")

	// ErrNoKeyMap is returned when no key map is registered for a type
	ErrNoKeyMap = errors.New("no key map registered for type")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	PartitionKey string
	RowKey       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity (%q, %q) not found", e.PartitionKey, e.RowKey)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// BatchError represents a rejected batch transaction. The service applies
// batches atomically, so a rejection means zero actions took effect.
type BatchError struct {
	Table   string
	Actions int
	Cause   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch of %d actions against table %q failed: %v", e.Actions, e.Table, e.Cause)
}

func (e *BatchError) Is(target error) bool {
	return target == ErrBatchFailed
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(partitionKey, rowKey string) error {
	return &NotFoundError{PartitionKey: partitionKey, RowKey: rowKey}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewBatchError creates a new BatchError
func NewBatchError(table string, actions int, cause error) error {
	return &BatchError{Table: table, Actions: actions, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsBatchFailed checks if an error is a rejected batch error
func IsBatchFailed(err error) bool {
	return errors.Is(err, ErrBatchFailed)
}
