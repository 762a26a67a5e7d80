// Package risk has the static risk distribution display.
package risk

import (
	"slices"

	"github.com/slok/checkmycrypto/internal/model"
)

// Display shows a fixed risk distribution, it has no timers nor transitions.
type Display struct {
	dist model.RiskDistribution
}

// NewDisplay returns a display of the advertised distribution.
func NewDisplay() *Display {
	return &Display{dist: model.DefaultRiskDistribution()}
}

// Distribution returns the distribution shown.
func (d *Display) Distribution() model.RiskDistribution {
	dist := d.dist
	dist.Segments = slices.Clone(d.dist.Segments)
	dist.Categories = slices.Clone(d.dist.Categories)
	return dist
}

// Share returns the fraction of the ring a segment covers, in [0, 1].
func (d *Display) Share(seg model.RiskSegment) float64 {
	if d.dist.Circumference <= 0 {
		return 0
	}
	return min(max(seg.Length/d.dist.Circumference, 0), 1)
}
