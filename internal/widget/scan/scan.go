// Package scan has the address scan simulator state machine.
//
//	idle --StartScan--> scanning --(delay)--> resolved
//	resolved --StartScan--> scanning
//	idle|resolved --SelectNextAddress--> idle
//
// The outcome is taken from the address selected when the scan resolves.
// Switching the address is ignored while scanning, so it is always the same
// address the scan was started with.
package scan

import (
	"fmt"
	"slices"
	"time"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	"github.com/slok/checkmycrypto/internal/widget"
)

// SimulatorConfig is the configuration for the scan simulator.
type SimulatorConfig struct {
	Scheduler scheduler.Scheduler
	// Addresses is the fixed demo address set, the first one is selected on creation.
	// Defaults to model.DefaultDemoAddresses.
	Addresses []model.DemoAddress
	// ScanDelay is the artificial scan latency. Defaults to model.DefaultScanDelay.
	ScanDelay time.Duration
	Logger    log.Logger
}

func (c *SimulatorConfig) defaults() error {
	if c.Scheduler == nil {
		return fmt.Errorf("scheduler is required")
	}

	if c.Addresses == nil {
		c.Addresses = model.DefaultDemoAddresses()
	}
	if err := model.ValidateDemoAddresses(c.Addresses); err != nil {
		return fmt.Errorf("invalid addresses: %w", err)
	}

	if c.ScanDelay == 0 {
		c.ScanDelay = model.DefaultScanDelay
	}
	if c.ScanDelay < 0 {
		return fmt.Errorf("scan delay must be positive: %w", model.ErrNotValid)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "widget.Scan"})

	return nil
}

// Simulator simulates a "check this address" interaction.
//
// It's not safe for concurrent use, all the methods and the scheduler
// callbacks must be serialized by the owner (e.g scheduler.Loop).
type Simulator struct {
	id        string
	addresses []model.DemoAddress
	current   int
	phase     model.ScanPhase
	result    model.Outcome
	delay     time.Duration
	scheduler scheduler.Scheduler
	pending   scheduler.Handle
	disposed  bool
	notifier  widget.Notifier[model.ScanState]
	logger    log.Logger
}

// NewSimulator returns a new mounted simulator in idle phase with the first address selected.
func NewSimulator(cfg SimulatorConfig) (*Simulator, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	id := widget.NewID()
	s := &Simulator{
		id:        id,
		addresses: slices.Clone(cfg.Addresses),
		phase:     model.ScanPhaseIdle,
		result:    model.OutcomeNone,
		delay:     cfg.ScanDelay,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger.WithValues(log.Kv{"id": id}),
	}
	s.logger.Debugf("Scan simulator mounted")

	return s, nil
}

// ID returns the instance ID.
func (s *Simulator) ID() string { return s.id }

// State returns a snapshot of the current state.
func (s *Simulator) State() model.ScanState {
	return model.ScanState{
		Address: s.addresses[s.current],
		Phase:   s.phase,
		Result:  s.result,
	}
}

// Addresses returns the demo address set.
func (s *Simulator) Addresses() []model.DemoAddress {
	return slices.Clone(s.addresses)
}

// Subscribe registers fn to receive every state change.
func (s *Simulator) Subscribe(fn func(model.ScanState)) (unsubscribe func()) {
	if s.disposed {
		return func() {}
	}
	return s.notifier.Subscribe(fn)
}

// SelectNextAddress selects the next demo address (wrapping around) and resets
// the scan. It's ignored while scanning.
func (s *Simulator) SelectNextAddress() {
	if s.disposed {
		return
	}

	if s.phase == model.ScanPhaseScanning {
		s.logger.Debugf("Ignoring address switch while scanning")
		return
	}

	s.selectIndex((s.current + 1) % len(s.addresses))
}

// SelectAddress selects a demo address by its value and resets the scan.
func (s *Simulator) SelectAddress(value string) error {
	idx := slices.IndexFunc(s.addresses, func(a model.DemoAddress) bool { return a.Value == value })
	if idx < 0 {
		return fmt.Errorf("demo address %s: %w", value, model.ErrNotFound)
	}

	if s.disposed {
		return nil
	}

	if s.phase == model.ScanPhaseScanning {
		return fmt.Errorf("cannot switch address while scanning: %w", model.ErrNotValid)
	}

	s.selectIndex(idx)

	return nil
}

func (s *Simulator) selectIndex(idx int) {
	s.current = idx
	s.phase = model.ScanPhaseIdle
	s.result = model.OutcomeNone
	s.logger.Debugf("Selected address %s", s.addresses[idx].Value)

	s.notifier.Notify(s.State())
}

// StartScan starts a scan of the selected address. It's a no-op while scanning.
func (s *Simulator) StartScan() {
	if s.disposed {
		return
	}

	if s.phase == model.ScanPhaseScanning {
		s.logger.Debugf("Scan already in progress")
		return
	}

	s.phase = model.ScanPhaseScanning
	s.result = model.OutcomeNone
	s.pending = s.scheduler.After(s.delay, s.resolve)
	s.logger.Debugf("Scanning address %s", s.addresses[s.current].Value)

	s.notifier.Notify(s.State())
}

func (s *Simulator) resolve() {
	s.pending = nil
	if s.disposed || s.phase != model.ScanPhaseScanning {
		return
	}

	s.phase = model.ScanPhaseResolved
	s.result = s.addresses[s.current].Outcome
	s.logger.Infof("Address %s resolved as %s", s.addresses[s.current].Value, s.result)

	s.notifier.Notify(s.State())
}

// Dispose unmounts the simulator, the pending scan is cancelled and
// subscribers are dropped. Calling it more than once is a no-op.
func (s *Simulator) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true

	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	s.notifier.Clear()
	s.logger.Debugf("Scan simulator disposed")
}

// Disposed returns true if the simulator has been disposed.
func (s *Simulator) Disposed() bool { return s.disposed }
