// Package checkout provides the domain model of the multi-step checkout form.
//
// The package includes:
//   - OrderDraft: the in-progress, unsubmitted order record
//   - Step: the four-state wizard position (billing, shipping, payment, summary)
//   - FieldErrors: a fixed-shape record of per-field validation messages
//   - Validate: the pure per-step validator
//   - Advance, Retreat, Finalize: the step navigator
//   - PickupSelector: the modal-scoped pickup-point sub-state
//   - Session: the aggregate root that owns draft, step, errors and selector
//   - FinalizedOrder: the snapshot handed to an order sink on finalize
//
// Key business rules:
//   - A step advances only when its validator returns no errors
//   - Retreat never validates and never clears errors
//   - Summary is terminal; advancing from it is a no-op
//   - The pickup point is required only when the shipping method is pickup
//   - Finalize fires once, from the summary step, and keeps the step unchanged
package checkout
