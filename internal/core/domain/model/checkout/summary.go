package checkout

// SummaryLine is one labelled row of the read-only summary.
type SummaryLine struct {
	Label string
	Value string
}

// Summarize renders the draft for the summary step. The pickup point row is
// present exactly when the shipping method is Pickup.
func Summarize(draft OrderDraft) []SummaryLine {
	lines := []SummaryLine{
		{Label: "Name", Value: draft.Name},
		{Label: "Email", Value: draft.Email},
		{Label: "Address", Value: draft.Address},
		{Label: "Shipping", Value: draft.ShippingMethod.Label()},
	}
	if draft.ShippingMethod == Pickup {
		lines = append(lines, SummaryLine{Label: "Pickup point", Value: draft.PickupPoint})
	}
	return append(lines, SummaryLine{Label: "Payment", Value: draft.PaymentMethod.Label()})
}
