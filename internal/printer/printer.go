package printer

import (
	"io"

	"github.com/slok/checkmycrypto/internal/model"
)

// Printer knows how to print the demo widgets information in different formats.
type Printer interface {
	PrintAddresses(addrs []model.DemoAddress) error
	PrintScan(state model.ScanState) error
	PrintWorkflowStage(state model.WorkflowState) error
	PrintRisk(dist model.RiskDistribution) error
	PrintMessage(msg string) error
}

// New returns the printer for a format (table or json).
func New(format string, w io.Writer) Printer {
	if format == FormatJSON {
		return NewJSONPrinter(w)
	}
	return NewTablePrinter(w)
}

const (
	FormatTable = "table"
	FormatJSON  = "json"
)
