package checkout_test

import (
	"testing"

	"checkout/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
)

func TestPickupSelector(t *testing.T) {
	t.Run("should start closed with the catalog in order", func(t *testing.T) {
		selector := checkout.NewPickupSelector(checkout.DefaultPickupPoints)

		assert.False(t, selector.IsOpen())
		assert.Equal(t, checkout.DefaultPickupPoints, selector.Points())
		assert.True(t, selector.Contains("Debrecen - Fórum"))
		assert.False(t, selector.Contains("Debrecen"))
	})

	t.Run("should not share the catalog slice", func(t *testing.T) {
		points := []string{"A", "B"}
		selector := checkout.NewPickupSelector(points)

		points[0] = "changed"
		selector.Points()[1] = "changed"

		assert.Equal(t, []string{"A", "B"}, selector.Points())
	})

	t.Run("open and close", func(t *testing.T) {
		selector := checkout.NewPickupSelector(checkout.DefaultPickupPoints)

		selector.Open()
		assert.True(t, selector.IsOpen())
		selector.Open()
		assert.True(t, selector.IsOpen())
		selector.Close()
		assert.False(t, selector.IsOpen())
	})

	t.Run("select writes the label and closes", func(t *testing.T) {
		selector := checkout.NewPickupSelector(checkout.DefaultPickupPoints)
		selector.Open()
		draft := validDraft()
		draft.ShippingMethod = checkout.Pickup

		updated := selector.Select(draft, "Győr - Árkád")

		assert.False(t, selector.IsOpen())
		assert.Equal(t, "Győr - Árkád", updated.PickupPoint)

		updated.PickupPoint = draft.PickupPoint
		assert.Equal(t, draft, updated, "no other field may change")
	})

	t.Run("select does not validate", func(t *testing.T) {
		selector := checkout.NewPickupSelector(checkout.DefaultPickupPoints)

		updated := selector.Select(checkout.OrderDraft{}, "anywhere")

		assert.Equal(t, "anywhere", updated.PickupPoint)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("home delivery has no pickup line", func(t *testing.T) {
		lines := checkout.Summarize(validDraft())

		assert.Equal(t, []checkout.SummaryLine{
			{Label: "Name", Value: "Kiss Anna"},
			{Label: "Email", Value: "anna@example.hu"},
			{Label: "Address", Value: "Budapest, Váci út 1-3."},
			{Label: "Shipping", Value: "Home delivery"},
			{Label: "Payment", Value: "Card"},
		}, lines)
	})

	t.Run("pickup adds the pickup point", func(t *testing.T) {
		draft := validDraft()
		draft.ShippingMethod = checkout.Pickup
		draft.PickupPoint = "Pécs - Árkád"
		draft.PaymentMethod = checkout.CashOnDelivery

		lines := checkout.Summarize(draft)

		assert.Len(t, lines, 6)
		assert.Equal(t, checkout.SummaryLine{Label: "Pickup point", Value: "Pécs - Árkád"}, lines[4])
		assert.Equal(t, checkout.SummaryLine{Label: "Payment", Value: "Cash on delivery"}, lines[5])
	})
}
