// Package sink delivers finalized orders to their consumer. LogSink writes
// them to the structured log; StanSink publishes them to a NATS Streaming
// subject as JSON.
package sink

import (
	"time"

	"checkout/internal/core/domain/model/checkout"
)

// OrderMessage is the JSON document published for every finalized order.
type OrderMessage struct {
	OrderID        string        `json:"orderId"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Address        string        `json:"address"`
	ShippingMethod string        `json:"shippingMethod"`
	PickupPoint    string        `json:"pickupPoint,omitempty"`
	PaymentMethod  string        `json:"paymentMethod"`
	FinalizedAt    time.Time     `json:"finalizedAt"`
	Summary        []SummaryLine `json:"summary"`
}

type SummaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// NewOrderMessage maps a finalized order. The pickup point is only carried
// for pickup orders.
func NewOrderMessage(order checkout.FinalizedOrder) OrderMessage {
	msg := OrderMessage{
		OrderID:        order.ID.String(),
		Name:           order.Draft.Name,
		Email:          order.Draft.Email,
		Address:        order.Draft.Address,
		ShippingMethod: string(order.Draft.ShippingMethod),
		PaymentMethod:  string(order.Draft.PaymentMethod),
		FinalizedAt:    order.FinalizedAt,
	}
	if order.Draft.ShippingMethod == checkout.Pickup {
		msg.PickupPoint = order.Draft.PickupPoint
	}
	for _, line := range order.Summary() {
		msg.Summary = append(msg.Summary, SummaryLine{Label: line.Label, Value: line.Value})
	}
	return msg
}
