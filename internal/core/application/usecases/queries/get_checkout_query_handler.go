package queries

import (
	"context"
	"slices"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/ports"
)

// GetCheckoutQueryHandler reads sessions straight from the store, outside
// any unit of work.
type GetCheckoutQueryHandler struct {
	reader       ports.SessionReader
	pickupPoints []string
}

func NewGetCheckoutQueryHandler(reader ports.SessionReader, pickupPoints []string) GetCheckoutQueryHandler {
	return GetCheckoutQueryHandler{
		reader:       reader,
		pickupPoints: slices.Clone(pickupPoints),
	}
}

// Handle returns the read model, or an errs.ObjectNotFoundError for unknown
// sessions.
func (h GetCheckoutQueryHandler) Handle(ctx context.Context, query GetCheckoutQuery) (GetCheckoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	snapshot, err := h.reader.GetSnapshot(ctx, query.CheckoutID())
	if err != nil {
		return GetCheckoutQueryResponse{}, err
	}

	response := GetCheckoutQueryResponse{
		ID:                 snapshot.ID,
		Step:               snapshot.Step,
		Draft:              snapshot.Draft,
		Errors:             snapshot.Errors,
		PickupSelectorOpen: snapshot.PickupSelectorOpen,
		PickupPoints:       slices.Clone(h.pickupPoints),
		UpdatedAt:          snapshot.UpdatedAt,
	}
	if snapshot.Step.IsTerminal() {
		response.Summary = checkout.Summarize(snapshot.Draft)
	}

	return response, nil
}
