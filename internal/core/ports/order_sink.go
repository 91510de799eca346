package ports

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
)

// OrderSink receives finalized orders. Submit is called exactly once per
// successful finalize; a returned error aborts the finalize and keeps the
// session.
type OrderSink interface {
	Submit(ctx context.Context, order checkout.FinalizedOrder) error
}
