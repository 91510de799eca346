package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// Messages carried by FieldErrors.
const (
	MessageRequired      = "required"
	MessageInvalidFormat = "invalid format"
)

// ErrValidationFailed is the sentinel wrapped by every ValidationError.
var ErrValidationFailed = errors.New("validation failed")

// FieldErrors holds at most one message per draft field. An empty string
// means the field is valid or was not checked. The zero value is "no errors".
type FieldErrors struct {
	Name           string
	Email          string
	Address        string
	ShippingMethod string
	PickupPoint    string
	PaymentMethod  string
}

// FieldErrorsFromMap rebuilds FieldErrors from a wire or storage mapping.
// Unknown keys are rejected.
func FieldErrorsFromMap(m map[string]string) (FieldErrors, error) {
	var result FieldErrors
	for key, msg := range m {
		field, err := ParseField(key)
		if err != nil {
			return FieldErrors{}, err
		}
		result = result.With(field, msg)
	}
	return result, nil
}

// IsEmpty reports whether no field is invalid.
func (e FieldErrors) IsEmpty() bool {
	return e == FieldErrors{}
}

// Get returns the message for a field, or "" when it is valid.
func (e FieldErrors) Get(field Field) string {
	switch field {
	case FieldName:
		return e.Name
	case FieldEmail:
		return e.Email
	case FieldAddress:
		return e.Address
	case FieldShippingMethod:
		return e.ShippingMethod
	case FieldPickupPoint:
		return e.PickupPoint
	case FieldPaymentMethod:
		return e.PaymentMethod
	}
	return ""
}

// With returns a copy with the message for field replaced.
func (e FieldErrors) With(field Field, msg string) FieldErrors {
	switch field {
	case FieldName:
		e.Name = msg
	case FieldEmail:
		e.Email = msg
	case FieldAddress:
		e.Address = msg
	case FieldShippingMethod:
		e.ShippingMethod = msg
	case FieldPickupPoint:
		e.PickupPoint = msg
	case FieldPaymentMethod:
		e.PaymentMethod = msg
	}
	return e
}

// Merge returns e with every message of other that e does not already carry.
func (e FieldErrors) Merge(other FieldErrors) FieldErrors {
	for _, field := range other.Fields() {
		if e.Get(field) == "" {
			e = e.With(field, other.Get(field))
		}
	}
	return e
}

// Fields lists the invalid fields in form order.
func (e FieldErrors) Fields() []Field {
	fields := make([]Field, 0)
	for _, field := range Fields() {
		if e.Get(field) != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// AsMap returns the invalid fields keyed by wire name. Valid fields are absent.
func (e FieldErrors) AsMap() map[string]string {
	m := make(map[string]string)
	for _, field := range e.Fields() {
		m[string(field)] = e.Get(field)
	}
	return m
}

// String renders "field: message" pairs in form order.
func (e FieldErrors) String() string {
	parts := make([]string, 0)
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e.Get(field)))
	}
	return strings.Join(parts, ", ")
}

// ValidationError is returned when a step (or finalize) is blocked by field
// errors. The errors are also stored on the session for display.
type ValidationError struct {
	Step   Step
	Errors FieldErrors
}

func NewValidationError(step Step, fieldErrors FieldErrors) *ValidationError {
	return &ValidationError{Step: step, Errors: fieldErrors}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s on %s step: %s", ErrValidationFailed, e.Step, e.Errors)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
