/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("beneficiaries", "123")

	expected := `record "123" not found in collection "beneficiaries"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("users", "abc")

	expected := `record "abc" already exists in collection "users"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrAlreadyExists) {
		t.Error("AlreadyExistsError should match ErrAlreadyExists")
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
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
			field:    "tc_no",
			message:  "must be 11 digits",
			expected: `validation failed for field "tc_no": must be 11 digits`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "empty payload",
			expected: "validation failed: empty payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}
			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestUnknownCollectionError(t *testing.T) {
	err := NewUnknownCollectionError("payments", "mongo")

	expected := `unknown collection "payments" for provider "mongo"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnknownCollection) {
		t.Error("UnknownCollectionError should match ErrUnknownCollection")
	}

	if !IsUnknownCollection(err) {
		t.Error("IsUnknownCollection should return true for UnknownCollectionError")
	}

	bare := NewUnknownCollectionError("payments", "")
	if bare.Error() != `unknown collection "payments"` {
		t.Errorf("unexpected message without provider: %q", bare.Error())
	}
}

func TestProviderUnavailableError(t *testing.T) {
	err := NewProviderUnavailableError("dynamodb", "client not initialized")

	expected := `provider "dynamodb" unavailable: client not initialized`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsProviderUnavailable(err) {
		t.Error("IsProviderUnavailable should return true for ProviderUnavailableError")
	}
}

func TestWrappedErrors(t *testing.T) {
	base := NewNotFoundError("meetings", "m-1")
	wrapped := fmt.Errorf("loading meeting: %w", base)

	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
	if IsProviderUnavailable(wrapped) {
		t.Error("wrapped not-found should not match ErrProviderUnavailable")
	}
}
