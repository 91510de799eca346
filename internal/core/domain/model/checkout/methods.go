package checkout

import (
	"fmt"
	"strings"

	"checkout/internal/pkg/errs"
)

// ShippingMethod is how the order reaches the customer. The zero value means
// the customer has not chosen yet.
type ShippingMethod string

const (
	ShippingMethodUnset ShippingMethod = ""
	HomeDelivery        ShippingMethod = "home-delivery"
	Pickup              ShippingMethod = "pickup"
)

// ParseShippingMethod accepts the canonical values, the short alias "home"
// and the empty string (unset). Anything else is a ValueIsInvalidError.
func ParseShippingMethod(value string) (ShippingMethod, error) {
	switch strings.TrimSpace(value) {
	case "":
		return ShippingMethodUnset, nil
	case string(HomeDelivery), "home":
		return HomeDelivery, nil
	case string(Pickup):
		return Pickup, nil
	default:
		return ShippingMethodUnset, errs.NewValueIsInvalidErrorWithCause(
			string(FieldShippingMethod),
			fmt.Errorf("%q is not a known shipping method", value),
		)
	}
}

// IsSet reports whether a method was chosen.
func (m ShippingMethod) IsSet() bool {
	return m != ShippingMethodUnset
}

// Label is the display name used on the summary.
func (m ShippingMethod) Label() string {
	switch m {
	case HomeDelivery:
		return "Home delivery"
	case Pickup:
		return "Personal pickup"
	case ShippingMethodUnset:
		return ""
	}
	return string(m)
}

// PaymentMethod is how the customer pays. The zero value means unset.
type PaymentMethod string

const (
	PaymentMethodUnset PaymentMethod = ""
	Card               PaymentMethod = "card"
	CashOnDelivery     PaymentMethod = "cash-on-delivery"
)

// ParsePaymentMethod accepts the canonical values, the short alias "cash"
// and the empty string (unset).
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch strings.TrimSpace(value) {
	case "":
		return PaymentMethodUnset, nil
	case string(Card):
		return Card, nil
	case string(CashOnDelivery), "cash":
		return CashOnDelivery, nil
	default:
		return PaymentMethodUnset, errs.NewValueIsInvalidErrorWithCause(
			string(FieldPaymentMethod),
			fmt.Errorf("%q is not a known payment method", value),
		)
	}
}

// IsSet reports whether a method was chosen.
func (m PaymentMethod) IsSet() bool {
	return m != PaymentMethodUnset
}

// Label is the display name used on the summary.
func (m PaymentMethod) Label() string {
	switch m {
	case Card:
		return "Card"
	case CashOnDelivery:
		return "Cash on delivery"
	case PaymentMethodUnset:
		return ""
	}
	return string(m)
}
