package checkout

import (
	"regexp"
	"strings"
)

// emailPattern accepts local@domain.tld: at least one domain label and a
// final label of two or more characters.
var emailPattern = regexp.MustCompile(`^[^\s@]+@(?:[^\s@.]+\.)+[^\s@.]{2,}$`)

// Validate returns the field errors of one step. It is pure and total:
// steps without rules (Summary, out-of-range values) yield no errors.
//
// Rules:
//   - Billing: name and address are required (blank after trimming fails);
//     email is required, then must match local@domain.tld
//   - Shipping: shipping method is required; pickup point is required only
//     when the method is Pickup
//   - Payment: payment method is required
func Validate(draft OrderDraft, step Step) FieldErrors {
	var result FieldErrors

	switch step {
	case Billing:
		if isBlank(draft.Name) {
			result.Name = MessageRequired
		}
		email := strings.TrimSpace(draft.Email)
		switch {
		case email == "":
			result.Email = MessageRequired
		case !emailPattern.MatchString(email):
			result.Email = MessageInvalidFormat
		}
		if isBlank(draft.Address) {
			result.Address = MessageRequired
		}
	case Shipping:
		if !draft.ShippingMethod.IsSet() {
			result.ShippingMethod = MessageRequired
		}
		if draft.ShippingMethod == Pickup && isBlank(draft.PickupPoint) {
			result.PickupPoint = MessageRequired
		}
	case Payment:
		if !draft.PaymentMethod.IsSet() {
			result.PaymentMethod = MessageRequired
		}
	case Summary:
	}

	return result
}

// ValidateThrough merges the errors of every editable step up to and
// including last.
func ValidateThrough(draft OrderDraft, last Step) FieldErrors {
	var result FieldErrors
	for step := Billing; step <= last && step.IsEditable(); step++ {
		result = result.Merge(Validate(draft, step))
	}
	return result
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
