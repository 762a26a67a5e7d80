package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/model"
)

func TestValidateDemoAddresses(t *testing.T) {
	tests := map[string]struct {
		addrs  []model.DemoAddress
		expErr bool
	}{
		"Default addresses should be valid.": {
			addrs: model.DefaultDemoAddresses(),
		},
		"A single address should be valid.": {
			addrs: []model.DemoAddress{{Value: "0xabc", Outcome: model.OutcomeRisky}},
		},
		"Empty set should fail.": {
			addrs:  nil,
			expErr: true,
		},
		"Missing value should fail.": {
			addrs:  []model.DemoAddress{{Outcome: model.OutcomeClean}},
			expErr: true,
		},
		"Missing outcome should fail.": {
			addrs:  []model.DemoAddress{{Value: "0xabc"}},
			expErr: true,
		},
		"Unknown outcome should fail.": {
			addrs:  []model.DemoAddress{{Value: "0xabc", Outcome: "suspicious"}},
			expErr: true,
		},
		"Duplicated addresses should fail.": {
			addrs: []model.DemoAddress{
				{Value: "0xabc", Outcome: model.OutcomeClean},
				{Value: "0xabc", Outcome: model.OutcomeRisky},
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := model.ValidateDemoAddresses(test.addrs)
			if test.expErr {
				assert.ErrorIs(t, err, model.ErrNotValid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportFor(t *testing.T) {
	tests := map[string]struct {
		outcome       model.Outcome
		expNil        bool
		expTrustScore int
		expSanctions  string
	}{
		"Clean outcome should have a high trust score.": {
			outcome:       model.OutcomeClean,
			expTrustScore: 98,
			expSanctions:  "None",
		},
		"Risky outcome should be OFAC listed.": {
			outcome:       model.OutcomeRisky,
			expTrustScore: 12,
			expSanctions:  "OFAC Listed",
		},
		"No outcome should not have report.": {
			outcome: model.OutcomeNone,
			expNil:  true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			report := model.ReportFor(test.outcome)
			if test.expNil {
				assert.Nil(t, report)
				return
			}

			require.NotNil(t, report)
			assert.Equal(t, test.outcome, report.Outcome)
			assert.Equal(t, test.expTrustScore, report.TrustScore)
			assert.Equal(t, test.expSanctions, report.SanctionsLists)
		})
	}
}

func TestScanStateReport(t *testing.T) {
	addr := model.DemoAddress{Value: "0x71C...9A2", Outcome: model.OutcomeClean}

	scanning := model.ScanState{Address: addr, Phase: model.ScanPhaseScanning}
	assert.False(t, scanning.HasResult())
	assert.Nil(t, scanning.Report())

	resolved := model.ScanState{Address: addr, Phase: model.ScanPhaseResolved, Result: model.OutcomeClean}
	assert.True(t, resolved.HasResult())
	require.NotNil(t, resolved.Report())
	assert.Equal(t, "0%", resolved.Report().DarknetExposure)
}
