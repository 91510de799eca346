package checkout

import "slices"

// DefaultPickupPoints is the pickup-point catalog offered by the selector,
// in display order.
var DefaultPickupPoints = []string{
	"Budapest - Westend",
	"Debrecen - Fórum",
	"Szeged - Árkád",
	"Győr - Árkád",
	"Pécs - Árkád",
}

// PickupSelector is the modal sub-state of the shipping step: a fixed,
// ordered list of pickup-point labels and a visibility flag. It is kept
// apart from OrderDraft; the only thing it writes into the draft is the
// pickup point, on Select.
type PickupSelector struct {
	points []string
	open   bool
}

// NewPickupSelector returns a closed selector over a copy of points.
func NewPickupSelector(points []string) PickupSelector {
	return PickupSelector{points: slices.Clone(points)}
}

// Points returns a copy of the catalog in display order.
func (p PickupSelector) Points() []string {
	return slices.Clone(p.points)
}

// IsOpen reports whether the selector is visible.
func (p PickupSelector) IsOpen() bool {
	return p.open
}

// Contains reports whether point is one of the catalog labels.
func (p PickupSelector) Contains(point string) bool {
	return slices.Contains(p.points, point)
}

// Open shows the selector.
func (p *PickupSelector) Open() {
	p.open = true
}

// Close hides the selector.
func (p *PickupSelector) Close() {
	p.open = false
}

// Select writes point into the draft's pickup point, leaves every other
// field untouched and closes the selector. It performs no validation.
func (p *PickupSelector) Select(draft OrderDraft, point string) OrderDraft {
	draft.PickupPoint = point
	p.open = false
	return draft
}

func (p PickupSelector) clone() PickupSelector {
	return PickupSelector{points: slices.Clone(p.points), open: p.open}
}
