package model

import (
	"fmt"
)

// Outcome is the fixed risk classification bound to a demo address.
type Outcome string

const (
	// OutcomeNone means there is no result yet.
	OutcomeNone  Outcome = ""
	OutcomeClean Outcome = "clean"
	OutcomeRisky Outcome = "risky"
)

// Validate checks the outcome is one of the known classifications.
func (o Outcome) Validate() error {
	switch o {
	case OutcomeClean, OutcomeRisky:
		return nil
	}
	return fmt.Errorf("unknown outcome %q: %w", o, ErrNotValid)
}

// DemoAddress is a pre-scripted wallet address with its canned outcome.
// It is not a real lookup key.
type DemoAddress struct {
	Value   string
	Outcome Outcome
}

// Validate validates the demo address.
func (a DemoAddress) Validate() error {
	if a.Value == "" {
		return fmt.Errorf("address value is required: %w", ErrNotValid)
	}

	if err := a.Outcome.Validate(); err != nil {
		return fmt.Errorf("address %s: %w", a.Value, err)
	}

	return nil
}

// DefaultDemoAddresses returns the reference demo address set.
func DefaultDemoAddresses() []DemoAddress {
	return []DemoAddress{
		{Value: "0x71C...9A2", Outcome: OutcomeClean},
		{Value: "0x3fA...B19", Outcome: OutcomeRisky},
	}
}

// ValidateDemoAddresses checks a demo address set can drive a scan simulator.
func ValidateDemoAddresses(addrs []DemoAddress) error {
	if len(addrs) == 0 {
		return fmt.Errorf("at least one demo address is required: %w", ErrNotValid)
	}

	seen := map[string]bool{}
	for _, a := range addrs {
		if err := a.Validate(); err != nil {
			return err
		}
		if seen[a.Value] {
			return fmt.Errorf("duplicated address %s: %w", a.Value, ErrNotValid)
		}
		seen[a.Value] = true
	}

	return nil
}

// ScanReport is the synthetic report shown next to a scan result.
type ScanReport struct {
	Outcome         Outcome
	Headline        string
	DarknetExposure string
	SanctionsLists  string
	TrustScore      int
}

// TrustScoreMax is the top of the trust score scale.
const TrustScoreMax = 100

// ReportFor returns the canned report of an outcome. It returns nil for
// OutcomeNone.
func ReportFor(o Outcome) *ScanReport {
	switch o {
	case OutcomeClean:
		return &ScanReport{
			Outcome:         OutcomeClean,
			Headline:        "Address is clean",
			DarknetExposure: "0%",
			SanctionsLists:  "None",
			TrustScore:      98,
		}
	case OutcomeRisky:
		return &ScanReport{
			Outcome:         OutcomeRisky,
			Headline:        "High risk!",
			DarknetExposure: "85% detected",
			SanctionsLists:  "OFAC Listed",
			TrustScore:      12,
		}
	}

	return nil
}
