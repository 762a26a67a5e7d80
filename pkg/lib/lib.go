package lib

import (
	"context"
	"fmt"
	"time"

	appscan "github.com/slok/checkmycrypto/internal/app/scan"
	appworkflow "github.com/slok/checkmycrypto/internal/app/workflow"
	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	"github.com/slok/checkmycrypto/internal/widget/risk"
	"github.com/slok/checkmycrypto/internal/widget/scan"
	"github.com/slok/checkmycrypto/internal/widget/workflow"
)

// Config configures the SDK client.
//
// All fields are optional, an empty Config{} uses the reference demo.
type Config struct {
	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger

	// Addresses is the demo address set.
	// Default: the two reference addresses (clean and risky).
	Addresses []DemoAddress

	// ScanDelay is the artificial scan latency.
	// Default: 2s.
	ScanDelay time.Duration

	// WorkflowPeriod is the time between workflow stages.
	// Default: 2.5s.
	WorkflowPeriod time.Duration
}

func (c *Config) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

func (c Config) demo() model.DemoConfig {
	demo := model.DefaultDemoConfig()
	if c.Addresses != nil {
		demo.Addresses = c.Addresses
	}
	if c.ScanDelay != 0 {
		demo.ScanDelay = c.ScanDelay
	}
	if c.WorkflowPeriod != 0 {
		demo.WorkflowPeriod = c.WorkflowPeriod
	}
	return demo
}

// Client is the main SDK entry point.
//
// Create a Client with [New] and run its loop with [Client.Run]. A Client is
// safe for concurrent use.
type Client struct {
	loop   *scheduler.Loop
	demo   model.DemoConfig
	logger log.Logger
}

// New creates a new SDK client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	demo := cfg.demo()
	if err := demo.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loop, err := scheduler.NewLoop(scheduler.LoopConfig{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create loop: %w", err)
	}

	return &Client{
		loop:   loop,
		demo:   demo,
		logger: cfg.Logger,
	}, nil
}

// Run runs the client loop until the context is cancelled. Widgets don't
// transition while the loop is not running.
func (c *Client) Run(ctx context.Context) error {
	return c.loop.Run(ctx)
}

// Addresses returns the demo address set.
func (c *Client) Addresses() []DemoAddress {
	return append([]DemoAddress(nil), c.demo.Addresses...)
}

// Risk returns the static risk distribution.
func (c *Client) Risk() RiskDistribution {
	return risk.NewDisplay().Distribution()
}

// Scan mounts a scanner, scans a demo address (empty uses the first one),
// unmounts it and returns the resolved state.
func (c *Client) Scan(ctx context.Context, address string) (*ScanState, error) {
	svc, err := appscan.NewService(appscan.ServiceConfig{
		Executor: c.loop,
		Demo:     c.demo,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create scan service: %w", err)
	}

	return svc.Run(ctx, appscan.Request{Address: address})
}

// FollowWorkflow mounts a workflow and calls onStage with the initial stage and
// every stage change until cycles changes happened (0 or less follows until the
// context is cancelled).
func (c *Client) FollowWorkflow(ctx context.Context, cycles int, onStage func(WorkflowState)) (*WorkflowState, error) {
	svc, err := appworkflow.NewService(appworkflow.ServiceConfig{
		Executor: c.loop,
		Demo:     c.demo,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create workflow service: %w", err)
	}

	return svc.Run(ctx, appworkflow.Request{Cycles: cycles, OnStage: onStage})
}

// Scanner is a mounted scan simulator.
type Scanner struct {
	loop *scheduler.Loop
	sim  *scan.Simulator
}

// MountScanner mounts a new scan simulator on the client loop. The caller
// must call [Scanner.Dispose] when done.
func (c *Client) MountScanner(ctx context.Context) (*Scanner, error) {
	var sim *scan.Simulator
	var simErr error
	err := c.loop.Do(ctx, func() {
		sim, simErr = scan.NewSimulator(scan.SimulatorConfig{
			Scheduler: c.loop,
			Addresses: c.demo.Addresses,
			ScanDelay: c.demo.ScanDelay,
			Logger:    c.logger,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not mount scanner: %w", err)
	}
	if simErr != nil {
		return nil, fmt.Errorf("could not mount scanner: %w", simErr)
	}

	return &Scanner{loop: c.loop, sim: sim}, nil
}

// ID returns the scanner instance ID.
func (s *Scanner) ID() string { return s.sim.ID() }

// State returns the current scanner state.
func (s *Scanner) State(ctx context.Context) (ScanState, error) {
	var st ScanState
	err := s.loop.Do(ctx, func() { st = s.sim.State() })
	return st, err
}

// SelectNextAddress selects the next demo address, ignored while scanning.
func (s *Scanner) SelectNextAddress(ctx context.Context) error {
	return s.loop.Do(ctx, s.sim.SelectNextAddress)
}

// StartScan starts a scan, ignored while scanning.
func (s *Scanner) StartScan(ctx context.Context) error {
	return s.loop.Do(ctx, s.sim.StartScan)
}

// Subscribe registers fn to receive every state change. fn runs on the client
// loop and must not call back into the client.
func (s *Scanner) Subscribe(ctx context.Context, fn func(ScanState)) (unsubscribe func(), err error) {
	var unsub func()
	err = s.loop.Do(ctx, func() { unsub = s.sim.Subscribe(fn) })
	if err != nil {
		return nil, err
	}

	return func() { s.loop.Post(unsub) }, nil
}

// Dispose unmounts the scanner, a pending scan is cancelled.
func (s *Scanner) Dispose() {
	s.loop.Post(s.sim.Dispose)
}

// Workflow is a mounted workflow cycler.
type Workflow struct {
	loop   *scheduler.Loop
	cycler *workflow.Cycler
}

// MountWorkflow mounts a new workflow cycler on the client loop, it starts
// cycling right away. The caller must call [Workflow.Dispose] when done.
func (c *Client) MountWorkflow(ctx context.Context) (*Workflow, error) {
	var cycler *workflow.Cycler
	var cyclerErr error
	err := c.loop.Do(ctx, func() {
		cycler, cyclerErr = workflow.NewCycler(workflow.CyclerConfig{
			Scheduler: c.loop,
			Period:    c.demo.WorkflowPeriod,
			Stages:    c.demo.WorkflowStages,
			Logger:    c.logger,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not mount workflow: %w", err)
	}
	if cyclerErr != nil {
		return nil, fmt.Errorf("could not mount workflow: %w", cyclerErr)
	}

	return &Workflow{loop: c.loop, cycler: cycler}, nil
}

// ID returns the workflow instance ID.
func (w *Workflow) ID() string { return w.cycler.ID() }

// State returns the current workflow state.
func (w *Workflow) State(ctx context.Context) (WorkflowState, error) {
	var st WorkflowState
	err := w.loop.Do(ctx, func() { st = w.cycler.State() })
	return st, err
}

// Subscribe registers fn to receive every stage change. fn runs on the client
// loop and must not call back into the client.
func (w *Workflow) Subscribe(ctx context.Context, fn func(WorkflowState)) (unsubscribe func(), err error) {
	var unsub func()
	err = w.loop.Do(ctx, func() { unsub = w.cycler.Subscribe(fn) })
	if err != nil {
		return nil, err
	}

	return func() { w.loop.Post(unsub) }, nil
}

// Dispose unmounts the workflow and stops its timer.
func (w *Workflow) Dispose() {
	w.loop.Post(w.cycler.Dispose)
}
