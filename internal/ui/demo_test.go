package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/model"
)

func newTestModel(calls *[]string) demoModel {
	return demoModel{
		scan: model.ScanState{
			Address: model.DefaultDemoAddresses()[0],
			Phase:   model.ScanPhaseIdle,
		},
		workflow: model.WorkflowState{Stage: 0, Stages: model.DefaultWorkflowStages()},
		risk:     model.DefaultRiskDistribution(),
		actions: actions{
			nextAddress: func() { *calls = append(*calls, "next") },
			startScan:   func() { *calls = append(*calls, "scan") },
		},
	}
}

func TestDemoModelKeys(t *testing.T) {
	tests := map[string]struct {
		key      tea.KeyMsg
		expCalls []string
		expQuit  bool
	}{
		"n should switch the address.": {
			key:      tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")},
			expCalls: []string{"next"},
		},
		"tab should switch the address.": {
			key:      tea.KeyMsg{Type: tea.KeyTab},
			expCalls: []string{"next"},
		},
		"enter should start a scan.": {
			key:      tea.KeyMsg{Type: tea.KeyEnter},
			expCalls: []string{"scan"},
		},
		"q should quit.": {
			key:     tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")},
			expQuit: true,
		},
		"Unknown keys should be ignored.": {
			key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var calls []string
			m := newTestModel(&calls)

			got, cmd := m.Update(test.key)

			assert.Equal(t, test.expCalls, calls)
			assert.Equal(t, test.expQuit, got.(demoModel).quitting)
			if test.expQuit {
				require.NotNil(t, cmd)
				assert.Equal(t, tea.Quit(), cmd())
				assert.Empty(t, got.View())
			}
		})
	}
}

func TestDemoModelStateMessages(t *testing.T) {
	var calls []string
	m := newTestModel(&calls)

	resolved := model.ScanState{
		Address: model.DefaultDemoAddresses()[1],
		Phase:   model.ScanPhaseResolved,
		Result:  model.OutcomeRisky,
	}
	got, _ := m.Update(scanMsg(resolved))
	got, _ = got.Update(workflowMsg(model.WorkflowState{Stage: 3, Stages: model.DefaultWorkflowStages()}))

	dm := got.(demoModel)
	assert.Equal(t, resolved, dm.scan)
	assert.Equal(t, 3, dm.workflow.Stage)

	view := dm.View()
	assert.Contains(t, view, "0x3fA...B19")
	assert.Contains(t, view, "High risk!")
	assert.Contains(t, view, "OFAC Listed")
	assert.Contains(t, view, "Instant result")
	assert.Contains(t, view, "Gambling")
}

func TestRenderScanPhases(t *testing.T) {
	addr := model.DefaultDemoAddresses()[0]

	idle := RenderScan(model.ScanState{Address: addr, Phase: model.ScanPhaseIdle})
	assert.Contains(t, idle, "Enter an address to check")

	scanning := RenderScan(model.ScanState{Address: addr, Phase: model.ScanPhaseScanning})
	assert.Contains(t, scanning, "Scanning the blockchain...")
	assert.NotContains(t, scanning, "TRUST SCORE")

	resolved := RenderScan(model.ScanState{Address: addr, Phase: model.ScanPhaseResolved, Result: model.OutcomeClean})
	assert.Contains(t, resolved, "Address is clean")
	assert.Contains(t, resolved, "98/100")
}

func TestRenderWorkflow(t *testing.T) {
	out := RenderWorkflow(model.WorkflowState{Stage: 1, Stages: model.DefaultWorkflowStages()})

	assert.Contains(t, out, "MESSENGER")
	assert.Contains(t, out, "SCANNER")
	assert.Contains(t, out, "REPORT")
	assert.Contains(t, out, "The bot analyses the blockchain")
}
