package checkout

import (
	"checkout/internal/pkg/errs"
)

// Step is the position of a session in the checkout wizard.
//
// Transitions (only through the navigator):
//
//	Billing <──> Shipping <──> Payment <──> Summary
//
// Forward moves are gated by validation, backward moves are not.
// Summary is the terminal, read-only state.
type Step int

const (
	// Billing collects name, email and address.
	Billing Step = iota

	// Shipping collects the shipping method and, for pickup, the pickup point.
	Shipping

	// Payment collects the payment method.
	Payment

	// Summary shows the draft read-only and offers finalize.
	Summary
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		Billing:  "billing",
		Shipping: "shipping",
		Payment:  "payment",
		Summary:  "summary",
	}
}

// StepFromInt converts a stored or transported step index, rejecting values
// outside [Billing, Summary].
func StepFromInt(i int) (Step, error) {
	s := Step(i)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate checks that the step lies in [Billing, Summary].
func (s Step) Validate() error {
	if s < Billing || s > Summary {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(Billing), int(Summary))
	}
	return nil
}

// String returns the lower-case step name, or "unknown" for invalid values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsEditable reports whether the step collects input (every step but Summary).
func (s Step) IsEditable() bool {
	return s >= Billing && s < Summary
}

// IsTerminal reports whether the step is Summary.
func (s Step) IsTerminal() bool {
	return s == Summary
}

// Next returns min(s+1, Summary).
func (s Step) Next() Step {
	if s >= Summary {
		return Summary
	}
	return s + 1
}

// Prev returns max(s-1, Billing).
func (s Step) Prev() Step {
	if s <= Billing {
		return Billing
	}
	return s - 1
}
