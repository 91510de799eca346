package commands

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

// UpdateDraftFieldCommandHandler applies field-change events to the draft.
// Stored field errors are not touched; they refresh on the next navigation.
type UpdateDraftFieldCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewUpdateDraftFieldCommandHandler(uowFactory SessionUoWFactory) UpdateDraftFieldCommandHandler {
	return UpdateDraftFieldCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces one draft field. Invalid enum values are returned as
// errs.ValueIsInvalidError and nothing is stored.
func (h *UpdateDraftFieldCommandHandler) Handle(ctx context.Context, cmd UpdateDraftFieldCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateSession(ctx, h.uowFactory, cmd.CheckoutID(), func(session *checkout.Session) error {
		return session.UpdateField(cmd.Field(), cmd.Value())
	})
}
