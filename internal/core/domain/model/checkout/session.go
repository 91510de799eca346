package checkout

import (
	"errors"
	"fmt"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not built by
	// NewSession or RestoreSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession constructor")

	// ErrNotOnSummaryStep is returned by Finalize anywhere but the summary step.
	ErrNotOnSummaryStep = errors.New("checkout can only be finalized from the summary step")

	// ErrAlreadyFinalized is returned by a second Finalize on the same session.
	ErrAlreadyFinalized = errors.New("checkout is already finalized")

	// ErrUnknownPickupPoint is returned when selecting a label the catalog does not offer.
	ErrUnknownPickupPoint = errors.New("pickup point is not offered")
)

// Snapshot is the persistable state of a Session. The pickup-point catalog
// is configuration and is not part of it.
type Snapshot struct {
	ID                 kernel.UUID
	Draft              OrderDraft
	Step               Step
	Errors             FieldErrors
	PickupSelectorOpen bool
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Session is the aggregate root of one checkout: the order draft, the active
// step, the field errors shown to the customer and the pickup selector.
//
// Session follows these invariants:
//   - Step is always within [Billing, Summary]
//   - Step moves forward only when the current step validates
//   - Errors are replaced by every Advance/Finalize and cleared on success
//   - Finalize succeeds at most once
//
// Version is the optimistic concurrency token of the stored copy the
// session was loaded from; repositories compare it on update.
type Session struct {
	id        kernel.UUID
	draft     OrderDraft
	step      Step
	errors    FieldErrors
	selector  PickupSelector
	version   int
	createdAt time.Time
	updatedAt time.Time
	finalized bool

	guard guard.ConstructorGuard
}

// NewSession starts an empty checkout on the billing step.
//
// Example:
//
//	session, err := checkout.NewSession(kernel.NewUUID(), checkout.DefaultPickupPoints, time.Now())
//	if err != nil {
//	    // invalid id
//	}
func NewSession(id kernel.UUID, pickupPoints []string, now time.Time) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Session{
		id:        id,
		step:      Billing,
		selector:  NewPickupSelector(pickupPoints),
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreSession rebuilds a session from storage. The snapshot is validated
// so corrupt rows surface as errors instead of impossible states.
func RestoreSession(snapshot Snapshot, pickupPoints []string) (*Session, error) {
	if err := errors.Join(
		snapshot.ID.Validate(),
		snapshot.Step.Validate(),
		validateVersion(snapshot.Version),
	); err != nil {
		return nil, err
	}

	selector := NewPickupSelector(pickupPoints)
	if snapshot.PickupSelectorOpen {
		selector.Open()
	}

	return &Session{
		id:        snapshot.ID,
		draft:     snapshot.Draft,
		step:      snapshot.Step,
		errors:    snapshot.Errors,
		selector:  selector,
		version:   snapshot.Version,
		createdAt: snapshot.CreatedAt,
		updatedAt: snapshot.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the session was built by one of its constructors.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// Snapshot returns the persistable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:                 s.id,
		Draft:              s.draft,
		Step:               s.step,
		Errors:             s.errors,
		PickupSelectorOpen: s.selector.IsOpen(),
		Version:            s.version,
		CreatedAt:          s.createdAt,
		UpdatedAt:          s.updatedAt,
	}
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) Draft() OrderDraft {
	return s.draft
}

func (s *Session) Step() Step {
	return s.step
}

// Errors returns the field errors of the last Advance or Finalize.
func (s *Session) Errors() FieldErrors {
	return s.errors
}

// PickupSelector returns a copy of the selector sub-state.
func (s *Session) PickupSelector() PickupSelector {
	return s.selector.clone()
}

func (s *Session) Version() int {
	return s.version
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsFinalized reports whether Finalize has succeeded.
func (s *Session) IsFinalized() bool {
	return s.finalized
}

// Touch records the time of the latest customer action.
func (s *Session) Touch(at time.Time) {
	s.updatedAt = at
}

// UpdateField applies one field-change event. Errors are left as they are;
// they refresh on the next Advance or Finalize.
func (s *Session) UpdateField(field Field, value string) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}

	draft, err := s.draft.WithField(field, value)
	if err != nil {
		return err
	}

	s.draft = draft
	return nil
}

// Advance runs the navigator on the current step and stores its outcome.
// It returns the errors that blocked the move, empty on success.
func (s *Session) Advance() FieldErrors {
	s.step, s.errors = Advance(s.draft, s.step)
	return s.errors
}

// Retreat moves one step back. Errors are kept.
func (s *Session) Retreat() {
	s.step = Retreat(s.step)
}

// OpenPickupSelector shows the pickup selector.
func (s *Session) OpenPickupSelector() {
	s.selector.Open()
}

// ClosePickupSelector hides the pickup selector without changing the draft.
func (s *Session) ClosePickupSelector() {
	s.selector.Close()
}

// SelectPickupPoint writes a catalog label into the draft and closes the
// selector. Labels outside the catalog are rejected because the selector
// never offers them.
func (s *Session) SelectPickupPoint(point string) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}
	if !s.selector.Contains(point) {
		return errs.NewValueIsInvalidErrorWithCause(
			string(FieldPickupPoint),
			fmt.Errorf("%w: %q", ErrUnknownPickupPoint, point),
		)
	}

	s.draft = s.selector.Select(s.draft, point)
	return nil
}

// Finalize closes the checkout. It must be called on the summary step. On
// validation failure the errors are stored and returned as a
// *ValidationError; on success the session is marked finalized and the
// order to hand to the sink is returned. The step never changes.
func (s *Session) Finalize(at time.Time) (FinalizedOrder, error) {
	if s.finalized {
		return FinalizedOrder{}, ErrAlreadyFinalized
	}
	if !s.step.IsTerminal() {
		return FinalizedOrder{}, ErrNotOnSummaryStep
	}

	var fieldErrors FieldErrors
	s.step, fieldErrors = Finalize(s.draft, s.step)
	s.errors = fieldErrors
	if !fieldErrors.IsEmpty() {
		return FinalizedOrder{}, NewValidationError(Payment, fieldErrors)
	}

	s.finalized = true
	return FinalizedOrder{
		ID:          s.id,
		Draft:       s.draft,
		FinalizedAt: at,
	}, nil
}

func validateVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	return nil
}
