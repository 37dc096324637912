package person

import (
	"errors"
	"fmt"
)

// InvalidValueObjectError is returned by a value object constructor when the
// input fails the object's own validation rule.
type InvalidValueObjectError struct {
	ValueObject string
	Reason      string
}

func (e *InvalidValueObjectError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.ValueObject, e.Reason)
}

func newInvalidValueObject(name, reason string) *InvalidValueObjectError {
	return &InvalidValueObjectError{ValueObject: name, Reason: reason}
}

// InvalidEntityError is returned by an entity factory or mutator when a field
// or cross-field rule fails, or when a child lookup by id fails.
type InvalidEntityError struct {
	Entity string
	Reason string
}

func (e *InvalidEntityError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Entity, e.Reason)
}

func newInvalidEntity(entity, reason string) *InvalidEntityError {
	return &InvalidEntityError{Entity: entity, Reason: reason}
}

// NotFoundError is returned when a requested aggregate does not exist.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key '%v' was not found", e.Entity, e.Key)
}

func NewNotFound(entity string, key any) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// DuplicateError is returned when a uniqueness rule spanning aggregates is
// violated, e.g. two persons sharing an email.
type DuplicateError struct {
	Entity   string
	Property string
	Value    any
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s '%v' already exists", e.Entity, e.Property, e.Value)
}

func NewDuplicate(entity, property string, value any) *DuplicateError {
	return &DuplicateError{Entity: entity, Property: property, Value: value}
}

// IsInvalid reports whether err is a domain validation failure, either from a
// value object or from an entity.
func IsInvalid(err error) bool {
	var voErr *InvalidValueObjectError
	var entErr *InvalidEntityError
	return errors.As(err, &voErr) || errors.As(err, &entErr)
}

// IsNotFound reports whether err signals a missing aggregate.
func IsNotFound(err error) bool {
	var nfErr *NotFoundError
	return errors.As(err, &nfErr)
}

// IsDuplicate reports whether err signals a uniqueness violation.
func IsDuplicate(err error) bool {
	var dupErr *DuplicateError
	return errors.As(err, &dupErr)
}
