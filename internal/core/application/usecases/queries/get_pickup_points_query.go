package queries

import (
	"errors"

	"checkout/internal/pkg/guard"
)

var (
	ErrGetPickupPointsQueryIsNotConstructed = errors.New(
		"GetPickupPointsQuery must be created via NewGetPickupPointsQuery constructor",
	)
)

// GetPickupPointsQuery lists the pickup-point catalog in display order.
type GetPickupPointsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPickupPointsQuery() GetPickupPointsQuery {
	return GetPickupPointsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPickupPointsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupPointsQueryIsNotConstructed)
}
