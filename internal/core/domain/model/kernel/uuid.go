package kernel

import (
	"fmt"

	"checkout/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
// This error is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object wrapping github.com/google/uuid. It identifies a
// checkout session for its whole life; the finalized order keeps the same id.
//
// The zero value is invalid and fails Validate.
//
// Example usage:
//
//	// A fresh id for a new checkout session
//	id := kernel.NewUUID()
//
//	// An id received from a client
//	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
//
// Example:
//
//	session, err := checkout.NewSession(kernel.NewUUID(), pickupPoints, time.Now().UTC())
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// Accepted forms are the ones google/uuid accepts: hyphenated, braced,
// urn-prefixed and bare hex.
//
// Example:
//
//	id, err := kernel.UUIDFromString("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFromGoogle(id)
}

// UUIDFromBytes creates a UUID from a 16 byte slice, as stored by the
// postgres session repository.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(raw) // raw holds the 16 stored bytes
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFromGoogle(id)
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, e.g. a path parameter
// bound by the generated HTTP layer. The nil UUID is rejected.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	newID := UUID{id: id}
	if err := newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (an array, so callers get a copy).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs for equality.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
//
// Example:
//
//	var id kernel.UUID
//	errors.Is(id.Validate(), kernel.ErrUUIDIsNotConstructed) // true
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
