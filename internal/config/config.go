// Package config loads the demo widgets configuration.
package config

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/slok/checkmycrypto/internal/model"
)

// YAMLRepository loads demo configuration from YAML files.
type YAMLRepository struct {
	fs fs.FS
}

// NewYAMLRepository creates a new YAML config repository.
func NewYAMLRepository(filesystem fs.FS) *YAMLRepository {
	return &YAMLRepository{fs: filesystem}
}

// GetConfig loads a demo configuration from a YAML file and returns a validated domain model.
// Missing fields use the reference demo values.
func (r *YAMLRepository) GetConfig(ctx context.Context, path string) (model.DemoConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.DemoConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.DemoConfig{}, ctx.Err()
	}

	var cfg DemoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.DemoConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	m, err := cfg.toModel()
	if err != nil {
		return model.DemoConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := m.Validate(); err != nil {
		return model.DemoConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return m, nil
}

// DemoConfig represents the YAML structure for the demo configuration.
type DemoConfig struct {
	ScanDelay      string          `yaml:"scan_delay"`
	WorkflowPeriod string          `yaml:"workflow_period"`
	Addresses      []AddressConfig `yaml:"addresses"`
	WorkflowStages []StageConfig   `yaml:"workflow_stages"`
}

// AddressConfig represents the YAML structure for a demo address.
type AddressConfig struct {
	Value   string `yaml:"value"`
	Outcome string `yaml:"outcome"`
}

// StageConfig represents the YAML structure for a workflow stage.
type StageConfig struct {
	Caption string `yaml:"caption"`
	Node    string `yaml:"node"`
}

func (c DemoConfig) toModel() (model.DemoConfig, error) {
	cfg := model.DefaultDemoConfig()

	if c.ScanDelay != "" {
		d, err := time.ParseDuration(c.ScanDelay)
		if err != nil {
			return cfg, fmt.Errorf("scan_delay: %w: %w", err, model.ErrNotValid)
		}
		cfg.ScanDelay = d
	}

	if c.WorkflowPeriod != "" {
		d, err := time.ParseDuration(c.WorkflowPeriod)
		if err != nil {
			return cfg, fmt.Errorf("workflow_period: %w: %w", err, model.ErrNotValid)
		}
		cfg.WorkflowPeriod = d
	}

	if len(c.Addresses) > 0 {
		cfg.Addresses = make([]model.DemoAddress, 0, len(c.Addresses))
		for _, a := range c.Addresses {
			cfg.Addresses = append(cfg.Addresses, model.DemoAddress{
				Value:   a.Value,
				Outcome: model.Outcome(a.Outcome),
			})
		}
	}

	if len(c.WorkflowStages) > 0 {
		cfg.WorkflowStages = make([]model.WorkflowStage, 0, len(c.WorkflowStages))
		for i, s := range c.WorkflowStages {
			if s.Caption == "" {
				return cfg, fmt.Errorf("workflow stage %d caption is required: %w", i, model.ErrNotValid)
			}

			node, err := parseNode(s.Node)
			if err != nil {
				return cfg, fmt.Errorf("workflow stage %d: %w", i, err)
			}

			cfg.WorkflowStages = append(cfg.WorkflowStages, model.WorkflowStage{
				Caption:    s.Caption,
				ActiveNode: node,
			})
		}
	}

	return cfg, nil
}

func parseNode(s string) (model.WorkflowNode, error) {
	for _, n := range model.WorkflowNodes() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown node %q: %w", s, model.ErrNotValid)
}
