package checkout

// Advance validates the current step. With no errors it moves to the next
// step (Summary stays Summary) and returns empty errors; otherwise it stays
// put and returns the errors. Repeated calls on an invalid draft return the
// same step and the same errors.
func Advance(draft OrderDraft, current Step) (Step, FieldErrors) {
	fieldErrors := Validate(draft, current)
	if !fieldErrors.IsEmpty() {
		return current, fieldErrors
	}
	return current.Next(), FieldErrors{}
}

// Retreat moves one step back, stopping at Billing. It never validates.
func Retreat(current Step) Step {
	return current.Prev()
}

// Finalize is the advance variant used by the summary's finalize action.
// The payment step gates it; billing and shipping are re-checked as well
// because fields can change after their step was passed. The step is
// returned unchanged in both outcomes.
func Finalize(draft OrderDraft, current Step) (Step, FieldErrors) {
	fieldErrors := Validate(draft, Payment)
	if fieldErrors.IsEmpty() {
		fieldErrors = ValidateThrough(draft, Shipping)
	}
	return current, fieldErrors
}
