package checkout

import (
	"time"

	"checkout/internal/core/domain/model/kernel"
)

// FinalizedOrder is what a successful finalize hands to the order sink.
// ID is the id of the session it came from.
type FinalizedOrder struct {
	ID          kernel.UUID
	Draft       OrderDraft
	FinalizedAt time.Time
}

// Summary renders the order the same way the summary step does.
func (o FinalizedOrder) Summary() []SummaryLine {
	return Summarize(o.Draft)
}
