package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

// AdvanceStepCommandHandler runs the navigator's Advance on a stored session.
type AdvanceStepCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewAdvanceStepCommandHandler(uowFactory SessionUoWFactory) AdvanceStepCommandHandler {
	return AdvanceStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the step the session is on afterwards. When the current
// step is invalid the session stays put, the field errors are stored for
// display and a *checkout.ValidationError is returned after the commit.
func (h *AdvanceStepCommandHandler) Handle(ctx context.Context, cmd AdvanceStepCommand) (checkout.Step, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var (
		from        checkout.Step
		to          checkout.Step
		fieldErrors checkout.FieldErrors
	)
	err := mutateSession(ctx, h.uowFactory, cmd.CheckoutID(), func(session *checkout.Session) error {
		from = session.Step()
		fieldErrors = session.Advance()
		to = session.Step()
		return nil
	})
	if err != nil {
		return 0, err
	}

	if !fieldErrors.IsEmpty() {
		return to, checkout.NewValidationError(from, fieldErrors)
	}

	return to, nil
}
