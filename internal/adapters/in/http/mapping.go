package http

import (
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/generated/servers"
)

func toCheckout(view queries.GetCheckoutQueryResponse) servers.Checkout {
	result := servers.Checkout{
		Id:       view.ID.Bytes(),
		Step:     int(view.Step),
		StepName: servers.CheckoutStepName(view.Step.String()),
		Draft: servers.OrderDraft{
			Name:           view.Draft.Name,
			Email:          view.Draft.Email,
			Address:        view.Draft.Address,
			ShippingMethod: servers.OrderDraftShippingMethod(view.Draft.ShippingMethod),
			PickupPoint:    view.Draft.PickupPoint,
			PaymentMethod:  servers.OrderDraftPaymentMethod(view.Draft.PaymentMethod),
		},
		Errors: toFieldErrors(view.Errors),
		PickupSelector: servers.PickupSelector{
			Open:   view.PickupSelectorOpen,
			Points: view.PickupPoints,
		},
		UpdatedAt: view.UpdatedAt,
	}
	if result.PickupSelector.Points == nil {
		result.PickupSelector.Points = []string{}
	}

	if len(view.Summary) > 0 {
		lines := toSummaryLines(view.Summary)
		result.Summary = &lines
	}

	return result
}

// toFieldErrors keeps only the invalid fields so that the JSON object lists
// nothing else.
func toFieldErrors(fieldErrors checkout.FieldErrors) servers.FieldErrors {
	var result servers.FieldErrors
	for _, field := range fieldErrors.Fields() {
		msg := fieldErrors.Get(field)
		switch field {
		case checkout.FieldName:
			result.Name = &msg
		case checkout.FieldEmail:
			result.Email = &msg
		case checkout.FieldAddress:
			result.Address = &msg
		case checkout.FieldShippingMethod:
			result.ShippingMethod = &msg
		case checkout.FieldPickupPoint:
			result.PickupPoint = &msg
		case checkout.FieldPaymentMethod:
			result.PaymentMethod = &msg
		}
	}
	return result
}

func toSummaryLines(lines []checkout.SummaryLine) []servers.SummaryLine {
	result := make([]servers.SummaryLine, len(lines))
	for i, line := range lines {
		result[i] = servers.SummaryLine{Label: line.Label, Value: line.Value}
	}
	return result
}
