package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/slok/checkmycrypto/internal/model"
)

// TablePrinter prints demo information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintAddresses prints the demo addresses in a table format.
func (t *TablePrinter) PrintAddresses(addrs []model.DemoAddress) error {
	if len(addrs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ADDRESS\tOUTCOME")
	for _, a := range addrs {
		fmt.Fprintf(tw, "%s\t%s\n", a.Value, a.Outcome)
	}

	return nil
}

// PrintScan prints the scan state and its report when resolved.
func (t *TablePrinter) PrintScan(state model.ScanState) error {
	fmt.Fprintf(t.writer, "Address:    %s\n", state.Address.Value)
	fmt.Fprintf(t.writer, "Phase:      %s\n", state.Phase)

	report := state.Report()
	if report == nil {
		return nil
	}

	fmt.Fprintf(t.writer, "Result:     %s\n", report.Outcome)
	fmt.Fprintf(t.writer, "Verdict:    %s\n", report.Headline)
	fmt.Fprintf(t.writer, "Darknet:    %s\n", report.DarknetExposure)
	fmt.Fprintf(t.writer, "Sanctions:  %s\n", report.SanctionsLists)
	fmt.Fprintf(t.writer, "Trust:      %d/%d\n", report.TrustScore, model.TrustScoreMax)

	return nil
}

// PrintWorkflowStage prints a single workflow stage line.
func (t *TablePrinter) PrintWorkflowStage(state model.WorkflowState) error {
	stage := state.Current()
	fmt.Fprintf(t.writer, "[%d/%d] %-10s %s\n", state.Stage+1, len(state.Stages), strings.ToUpper(string(stage.ActiveNode)), stage.Caption)
	return nil
}

// PrintRisk prints the risk distribution.
func (t *TablePrinter) PrintRisk(dist model.RiskDistribution) error {
	fmt.Fprintf(t.writer, "%s: %d%%\n", dist.Label, dist.HighRiskPercent)
	fmt.Fprintf(t.writer, "Badge: %s\n\n", dist.Badge)

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "CATEGORY\tCOLOR")
	for _, c := range dist.Categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Color)
	}

	return nil
}

// PrintMessage prints a simple message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
