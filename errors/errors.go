/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when attempting to create a record that already exists
	ErrAlreadyExists = errors.New("record already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCollection is returned when a logical collection name is not in the registry
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrProviderUnavailable is returned when the backing provider is unreachable or not initialized
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %q not found in collection %q", e.ID, e.Collection)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a record already exists
type AlreadyExistsError struct {
	Collection string
	ID         string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("record %q already exists in collection %q", e.ID, e.Collection)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
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

// UnknownCollectionError represents a lookup of a logical name absent from the registry.
// This is a configuration defect and is surfaced before any provider call is attempted.
type UnknownCollectionError struct {
	Logical  string
	Provider string
}

func (e *UnknownCollectionError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("unknown collection %q for provider %q", e.Logical, e.Provider)
	}
	return fmt.Sprintf("unknown collection %q", e.Logical)
}

func (e *UnknownCollectionError) Is(target error) bool {
	return target == ErrUnknownCollection
}

// ProviderUnavailableError represents a provider that cannot accept calls
// (missing credentials, nil client, unreachable endpoint).
type ProviderUnavailableError struct {
	Provider string
	Reason   string
}

func (e *ProviderUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("provider %q unavailable: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("provider %q unavailable", e.Provider)
}

func (e *ProviderUnavailableError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(collection, id string) error {
	return &NotFoundError{Collection: collection, ID: id}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(collection, id string) error {
	return &AlreadyExistsError{Collection: collection, ID: id}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnknownCollectionError creates a new UnknownCollectionError
func NewUnknownCollectionError(logical, provider string) error {
	return &UnknownCollectionError{Logical: logical, Provider: provider}
}

// NewProviderUnavailableError creates a new ProviderUnavailableError
func NewProviderUnavailableError(provider, reason string) error {
	return &ProviderUnavailableError{Provider: provider, Reason: reason}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownCollection checks if an error is an unknown collection error
func IsUnknownCollection(err error) bool {
	return errors.Is(err, ErrUnknownCollection)
}

// IsProviderUnavailable checks if an error is a provider unavailable error
func IsProviderUnavailable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable)
}
