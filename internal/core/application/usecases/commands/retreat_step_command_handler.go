package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

// RetreatStepCommandHandler runs the navigator's Retreat on a stored session.
type RetreatStepCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewRetreatStepCommandHandler(uowFactory SessionUoWFactory) RetreatStepCommandHandler {
	return RetreatStepCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the session one step back and returns the new step.
func (h *RetreatStepCommandHandler) Handle(ctx context.Context, cmd RetreatStepCommand) (checkout.Step, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var step checkout.Step
	err := mutateSession(ctx, h.uowFactory, cmd.CheckoutID(), func(session *checkout.Session) error {
		session.Retreat()
		step = session.Step()
		return nil
	})
	if err != nil {
		return 0, err
	}

	return step, nil
}
