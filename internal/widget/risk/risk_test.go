package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/widget/risk"
)

func TestDisplayDistribution(t *testing.T) {
	d := risk.NewDisplay()

	dist := d.Distribution()
	assert.Equal(t, 12, dist.HighRiskPercent)
	assert.Equal(t, "Darknet", dist.Badge)
	require.Len(t, dist.Categories, 4)
	assert.Equal(t, "Sanctions (OFAC)", dist.Categories[2].Name)

	// Returned copies should not change the display.
	dist.Categories[0].Name = "changed"
	assert.Equal(t, "Scams & Hacks", d.Distribution().Categories[0].Name)
}

func TestDisplayShare(t *testing.T) {
	d := risk.NewDisplay()

	assert.InDelta(t, 0.2388, d.Share(model.RiskSegment{Length: 60}), 0.001)
	assert.Equal(t, 1.0, d.Share(model.RiskSegment{Length: 1000}))
	assert.Equal(t, 0.0, d.Share(model.RiskSegment{Length: -5}))
}
