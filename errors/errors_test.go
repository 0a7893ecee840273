/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("USER#1", "PROFILE")

	// Test error message
	expected := `entity ("USER#1", "PROFILE") not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "connectionString",
			message:  "must not be empty",
			expected: `validation failed for field "connectionString": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestBatchError(t *testing.T) {
	cause := fmt.Errorf("409 conflict")
	err := NewBatchError("events", 3, cause)

	expected := `batch of 3 actions against table "events" failed: 409 conflict`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrBatchFailed) {
		t.Error("BatchError should match ErrBatchFailed")
	}

	if !IsBatchFailed(err) {
		t.Error("IsBatchFailed should return true for BatchError")
	}

	// Test that the underlying cause stays reachable
	if !errors.Is(err, cause) {
		t.Error("BatchError should unwrap to its cause")
	}
}

func TestErrorWrapping(t *testing.T) {
	err := NewNotFoundError("pk", "rk")
	wrapped := fmt.Errorf("lookup failed: %w", err)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
}
