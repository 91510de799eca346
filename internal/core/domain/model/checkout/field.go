package checkout

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// Field names one input of the draft. The string values are the keys used
// on the wire for field-change events and error mappings.
type Field string

const (
	FieldName           Field = "name"
	FieldEmail          Field = "email"
	FieldAddress        Field = "address"
	FieldShippingMethod Field = "shippingMethod"
	FieldPickupPoint    Field = "pickupPoint"
	FieldPaymentMethod  Field = "paymentMethod"
)

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldEmail,
		FieldAddress,
		FieldShippingMethod,
		FieldPickupPoint,
		FieldPaymentMethod,
	}
}

// ParseField resolves a wire field name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a draft field", name))
}

// Step returns the wizard step on which the field is edited.
func (f Field) Step() Step {
	switch f {
	case FieldName, FieldEmail, FieldAddress:
		return Billing
	case FieldShippingMethod, FieldPickupPoint:
		return Shipping
	case FieldPaymentMethod:
		return Payment
	}
	return Summary
}
