// Package queries contains the read use cases of the checkout wizard.
// Queries never modify a session; they return read models shaped for the
// presentation layer.
package queries

import (
	"errors"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/guard"
)

var (
	ErrGetCheckoutQueryIsNotConstructed = errors.New(
		"GetCheckoutQuery must be created via NewGetCheckoutQuery constructor",
	)
)

// GetCheckoutQuery loads everything needed to render one checkout.
//
// Example:
//
//	query, err := NewGetCheckoutQuery(checkoutID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if view.Step == checkout.Summary {
//	    for _, line := range view.Summary {
//	        fmt.Printf("%s: %s\n", line.Label, line.Value)
//	    }
//	}
type GetCheckoutQuery struct {
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCheckoutQuery(checkoutID kernel.UUID) (GetCheckoutQuery, error) {
	if err := checkoutID.Validate(); err != nil {
		return GetCheckoutQuery{}, err
	}

	return GetCheckoutQuery{
		checkoutID: checkoutID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutQueryIsNotConstructed)
}

func (q GetCheckoutQuery) CheckoutID() kernel.UUID {
	return q.checkoutID
}

// GetCheckoutQueryResponse is the read model of one checkout session.
// Summary is filled only on the summary step.
type GetCheckoutQueryResponse struct {
	ID                 kernel.UUID
	Step               checkout.Step
	Draft              checkout.OrderDraft
	Errors             checkout.FieldErrors
	PickupSelectorOpen bool
	PickupPoints       []string
	Summary            []checkout.SummaryLine
	UpdatedAt          time.Time
}
