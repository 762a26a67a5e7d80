package scan

import (
	"context"
	"fmt"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	widgetscan "github.com/slok/checkmycrypto/internal/widget/scan"
)

// ServiceConfig is the configuration for the scan service.
type ServiceConfig struct {
	Executor scheduler.Executor
	Demo     model.DemoConfig
	Logger   log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Executor == nil {
		return fmt.Errorf("executor is required")
	}

	if err := c.Demo.Validate(); err != nil {
		return fmt.Errorf("invalid demo config: %w", err)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Scan"})

	return nil
}

// Service mounts a scan simulator, runs a single scan and unmounts it.
type Service struct {
	executor scheduler.Executor
	demo     model.DemoConfig
	logger   log.Logger
}

// NewService creates a new scan service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		executor: cfg.Executor,
		demo:     cfg.Demo,
		logger:   cfg.Logger,
	}, nil
}

// Request represents the scan request parameters.
type Request struct {
	// Address is the demo address to scan, empty uses the first one.
	Address string
	// OnChange is called on every simulator state change, from the executor goroutine.
	OnChange func(model.ScanState)
}

// Run scans the requested demo address and returns the resolved state.
// The simulator is disposed when Run returns, also when the context is cancelled.
func (s *Service) Run(ctx context.Context, req Request) (*model.ScanState, error) {
	s.logger.Debugf("scanning demo address: %q", req.Address)

	if req.Address != "" {
		if _, err := s.demo.FindAddress(req.Address); err != nil {
			return nil, fmt.Errorf("invalid address: %w", err)
		}
	}

	resolved := make(chan model.ScanState, 1)
	var sim *widgetscan.Simulator
	var simErr error
	err := s.executor.Do(ctx, func() {
		sim, simErr = widgetscan.NewSimulator(widgetscan.SimulatorConfig{
			Scheduler: s.executor,
			Addresses: s.demo.Addresses,
			ScanDelay: s.demo.ScanDelay,
			Logger:    s.logger,
		})
		if simErr != nil {
			return
		}

		if req.Address != "" {
			if simErr = sim.SelectAddress(req.Address); simErr != nil {
				return
			}
		}

		sim.Subscribe(func(st model.ScanState) {
			if req.OnChange != nil {
				req.OnChange(st)
			}
			if st.Phase == model.ScanPhaseResolved {
				select {
				case resolved <- st:
				default:
				}
			}
		})
		sim.StartScan()
	})
	if err != nil {
		return nil, fmt.Errorf("could not mount scan simulator: %w", err)
	}
	if sim != nil {
		defer s.executor.Post(sim.Dispose)
	}
	if simErr != nil {
		return nil, fmt.Errorf("could not start scan: %w", simErr)
	}

	select {
	case st := <-resolved:
		s.logger.Infof("Scan of %s finished: %s", st.Address.Value, st.Result)
		return &st, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
