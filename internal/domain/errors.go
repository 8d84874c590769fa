package domain

import "fmt"

// NotFoundError indicates that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFoundError creates a NotFoundError for the given entity and identifier.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// ValidationError indicates malformed or semantically invalid caller input.
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ForbiddenError indicates the caller exists but lacks rights on the target entity.
type ForbiddenError struct {
	Message string
}

// NewForbiddenError creates a ForbiddenError with the given message.
func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ConflictError indicates the operation lost against concurrent state or a
// uniqueness constraint.
type ConflictError struct {
	Message string
}

// NewConflictError creates a ConflictError with the given message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// UnsupportedStateError indicates an unrecognized booking state filter. It
// carries the offending literal so the HTTP layer can echo it back.
type UnsupportedStateError struct {
	State string
}

// NewUnsupportedStateError creates an UnsupportedStateError for the given literal.
func NewUnsupportedStateError(state string) *UnsupportedStateError {
	return &UnsupportedStateError{State: state}
}

func (e *UnsupportedStateError) Error() string {
	return fmt.Sprintf("Unknown state: %s", e.State)
}
