package queries

import (
	"context"
	"slices"
)

type GetPickupPointsQueryHandler struct {
	pickupPoints []string
}

func NewGetPickupPointsQueryHandler(pickupPoints []string) GetPickupPointsQueryHandler {
	return GetPickupPointsQueryHandler{pickupPoints: slices.Clone(pickupPoints)}
}

// Handle returns a copy of the catalog.
func (h GetPickupPointsQueryHandler) Handle(_ context.Context, query GetPickupPointsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return slices.Clone(h.pickupPoints), nil
}
