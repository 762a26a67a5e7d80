package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/printer"
)

func resolvedRisky() model.ScanState {
	return model.ScanState{
		Address: model.DemoAddress{Value: "0x3fA...B19", Outcome: model.OutcomeRisky},
		Phase:   model.ScanPhaseResolved,
		Result:  model.OutcomeRisky,
	}
}

func TestTablePrinterPrintScan(t *testing.T) {
	tests := map[string]struct {
		state      model.ScanState
		expContain []string
		expMissing []string
	}{
		"Resolved scan should print the report.": {
			state: resolvedRisky(),
			expContain: []string{
				"Address:    0x3fA...B19",
				"Phase:      resolved",
				"Sanctions:  OFAC Listed",
				"Trust:      12/100",
			},
		},
		"Scanning should not print a report.": {
			state: model.ScanState{
				Address: model.DemoAddress{Value: "0x71C...9A2", Outcome: model.OutcomeClean},
				Phase:   model.ScanPhaseScanning,
			},
			expContain: []string{"Phase:      scanning"},
			expMissing: []string{"Result:", "Trust:"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := printer.NewTablePrinter(&buf)

			err := p.PrintScan(test.state)
			require.NoError(t, err)

			out := buf.String()
			for _, s := range test.expContain {
				assert.Contains(t, out, s)
			}
			for _, s := range test.expMissing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestJSONPrinterPrintScan(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintScan(resolvedRisky())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"result": "risky"`)
	assert.Contains(t, out, `"trust_score": 12`)
	assert.Contains(t, out, `"darknet_exposure": "85% detected"`)
}

func TestJSONPrinterPrintScanWithoutResult(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	err := p.PrintScan(model.ScanState{
		Address: model.DemoAddress{Value: "0x71C...9A2", Outcome: model.OutcomeClean},
		Phase:   model.ScanPhaseIdle,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"result": null`)
	assert.NotContains(t, out, `"report"`)
}

func TestTablePrinterPrintAddresses(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintAddresses(model.DefaultDemoAddresses())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ADDRESS")
	assert.Contains(t, lines[1], "0x71C...9A2")
	assert.Contains(t, lines[1], "clean")
	assert.Contains(t, lines[2], "risky")
}

func TestPrintWorkflowStage(t *testing.T) {
	state := model.WorkflowState{Stage: 1, Stages: model.DefaultWorkflowStages()}

	var buf bytes.Buffer
	err := printer.NewTablePrinter(&buf).PrintWorkflowStage(state)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[2/4] SCANNER")
	assert.Contains(t, buf.String(), "The bot analyses the blockchain")

	buf.Reset()
	err = printer.NewJSONPrinter(&buf).PrintWorkflowStage(state)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"active_node": "scanner"`)
}

func TestPrintRisk(t *testing.T) {
	dist := model.DefaultRiskDistribution()

	var buf bytes.Buffer
	err := printer.New(printer.FormatTable, &buf).PrintRisk(dist)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "High Risk: 12%")
	assert.Contains(t, buf.String(), "Sanctions (OFAC)")

	buf.Reset()
	err = printer.New(printer.FormatJSON, &buf).PrintRisk(dist)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"high_risk_percent": 12`)
}

func TestTablePrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintMessage("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", strings.TrimSpace(buf.String()))
}
