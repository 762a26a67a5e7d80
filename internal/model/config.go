package model

import (
	"fmt"
	"time"
)

const (
	// DefaultScanDelay is the artificial latency of a demo scan.
	DefaultScanDelay = 2000 * time.Millisecond
	// DefaultWorkflowPeriod is the time each workflow stage is shown.
	DefaultWorkflowPeriod = 2500 * time.Millisecond
)

// DemoConfig is the configuration of the demo widgets.
type DemoConfig struct {
	Addresses      []DemoAddress
	ScanDelay      time.Duration
	WorkflowPeriod time.Duration
	WorkflowStages []WorkflowStage
}

// DefaultDemoConfig returns the reference demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Addresses:      DefaultDemoAddresses(),
		ScanDelay:      DefaultScanDelay,
		WorkflowPeriod: DefaultWorkflowPeriod,
		WorkflowStages: DefaultWorkflowStages(),
	}
}

// Validate validates the demo configuration.
func (c DemoConfig) Validate() error {
	if err := ValidateDemoAddresses(c.Addresses); err != nil {
		return fmt.Errorf("addresses: %w", err)
	}

	if c.ScanDelay <= 0 {
		return fmt.Errorf("scan delay must be positive: %w", ErrNotValid)
	}

	if c.WorkflowPeriod <= 0 {
		return fmt.Errorf("workflow period must be positive: %w", ErrNotValid)
	}

	if len(c.WorkflowStages) == 0 {
		return fmt.Errorf("at least one workflow stage is required: %w", ErrNotValid)
	}

	return nil
}

// FindAddress returns the index of a demo address by its value.
func (c DemoConfig) FindAddress(value string) (int, error) {
	for i, a := range c.Addresses {
		if a.Value == value {
			return i, nil
		}
	}
	return -1, fmt.Errorf("demo address %s: %w", value, ErrNotFound)
}
