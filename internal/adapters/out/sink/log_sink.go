package sink

import (
	"context"
	"log/slog"

	"checkout/internal/core/domain/model/checkout"
)

// LogSink logs each finalized order at info level. It never fails.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "order_sink")}
}

func (s *LogSink) Submit(ctx context.Context, order checkout.FinalizedOrder) error {
	msg := NewOrderMessage(order)
	s.logger.InfoContext(ctx, "Order finalized",
		"order_id", msg.OrderID,
		"name", msg.Name,
		"email", msg.Email,
		"address", msg.Address,
		"shipping_method", msg.ShippingMethod,
		"pickup_point", msg.PickupPoint,
		"payment_method", msg.PaymentMethod,
		"finalized_at", msg.FinalizedAt,
	)
	return nil
}
