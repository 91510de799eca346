package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"checkout/internal/core/domain/model/checkout"

	stan "github.com/nats-io/stan.go"
)

// Publisher is the part of stan.Conn the sink uses.
type Publisher interface {
	Publish(subject string, data []byte) error
	Close() error
}

// StanSink publishes finalized orders to a NATS Streaming subject.
// Publish is synchronous: Submit returns only after the server acked.
type StanSink struct {
	conn    Publisher
	subject string
	logger  *slog.Logger
}

// DialStan connects to a NATS Streaming cluster.
func DialStan(clusterID, clientID, natsURL string) (stan.Conn, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return sc, nil
}

func NewStanSink(conn Publisher, subject string, logger *slog.Logger) *StanSink {
	return &StanSink{
		conn:    conn,
		subject: subject,
		logger:  logger.With("component", "stan_order_sink", "subject", subject),
	}
}

func (s *StanSink) Submit(ctx context.Context, order checkout.FinalizedOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(NewOrderMessage(order))
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", order.ID, err)
	}

	if err = s.conn.Publish(s.subject, data); err != nil {
		return fmt.Errorf("publish order %s: %w", order.ID, err)
	}

	s.logger.InfoContext(ctx, "Order published", "order_id", order.ID.String())
	return nil
}

// Close closes the underlying connection.
func (s *StanSink) Close() error {
	return s.conn.Close()
}
