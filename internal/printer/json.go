package printer

import (
	"encoding/json"
	"io"

	"github.com/slok/checkmycrypto/internal/model"
)

// JSONPrinter prints demo information in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

type addressOutput struct {
	Address string `json:"address"`
	Outcome string `json:"outcome"`
}

type scanOutput struct {
	Address string        `json:"address"`
	Phase   string        `json:"phase"`
	Result  *string       `json:"result"`
	Report  *reportOutput `json:"report,omitempty"`
}

type reportOutput struct {
	Headline        string `json:"headline"`
	DarknetExposure string `json:"darknet_exposure"`
	SanctionsLists  string `json:"sanctions_lists"`
	TrustScore      int    `json:"trust_score"`
}

type stageOutput struct {
	Stage      int    `json:"stage"`
	Total      int    `json:"total"`
	ActiveNode string `json:"active_node"`
	Caption    string `json:"caption"`
}

type riskOutput struct {
	HighRiskPercent int             `json:"high_risk_percent"`
	Label           string          `json:"label"`
	Badge           string          `json:"badge"`
	Segments        []segmentOutput `json:"segments"`
	Categories      []string        `json:"categories"`
}

type segmentOutput struct {
	Level  string  `json:"level"`
	Length float64 `json:"length"`
	Offset float64 `json:"offset"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// PrintAddresses prints the demo addresses in JSON format.
func (j *JSONPrinter) PrintAddresses(addrs []model.DemoAddress) error {
	out := make([]addressOutput, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, addressOutput{Address: a.Value, Outcome: string(a.Outcome)})
	}
	return j.encode(out)
}

// PrintScan prints the scan state in JSON format, result is null until resolved.
func (j *JSONPrinter) PrintScan(state model.ScanState) error {
	out := scanOutput{
		Address: state.Address.Value,
		Phase:   string(state.Phase),
	}

	if report := state.Report(); report != nil {
		result := string(report.Outcome)
		out.Result = &result
		out.Report = &reportOutput{
			Headline:        report.Headline,
			DarknetExposure: report.DarknetExposure,
			SanctionsLists:  report.SanctionsLists,
			TrustScore:      report.TrustScore,
		}
	}

	return j.encode(out)
}

// PrintWorkflowStage prints a workflow stage in JSON format.
func (j *JSONPrinter) PrintWorkflowStage(state model.WorkflowState) error {
	stage := state.Current()
	return j.encode(stageOutput{
		Stage:      state.Stage,
		Total:      len(state.Stages),
		ActiveNode: string(stage.ActiveNode),
		Caption:    stage.Caption,
	})
}

// PrintRisk prints the risk distribution in JSON format.
func (j *JSONPrinter) PrintRisk(dist model.RiskDistribution) error {
	out := riskOutput{
		HighRiskPercent: dist.HighRiskPercent,
		Label:           dist.Label,
		Badge:           dist.Badge,
	}
	for _, s := range dist.Segments {
		out.Segments = append(out.Segments, segmentOutput{Level: string(s.Level), Length: s.Length, Offset: s.Offset})
	}
	for _, c := range dist.Categories {
		out.Categories = append(out.Categories, c.Name)
	}

	return j.encode(out)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
