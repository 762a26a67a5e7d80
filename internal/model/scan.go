package model

// ScanPhase is the scan simulator position in its lifecycle.
type ScanPhase string

const (
	ScanPhaseIdle     ScanPhase = "idle"
	ScanPhaseScanning ScanPhase = "scanning"
	ScanPhaseResolved ScanPhase = "resolved"
)

// ScanState is the observable state of a scan simulator.
//
// Result is OutcomeNone unless Phase is ScanPhaseResolved.
type ScanState struct {
	Address DemoAddress
	Phase   ScanPhase
	Result  Outcome
}

// HasResult returns true when the scan has been resolved.
func (s ScanState) HasResult() bool {
	return s.Phase == ScanPhaseResolved && s.Result != OutcomeNone
}

// Report returns the synthetic report of the resolved scan, nil otherwise.
func (s ScanState) Report() *ScanReport {
	if !s.HasResult() {
		return nil
	}
	return ReportFor(s.Result)
}
