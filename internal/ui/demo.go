// Package ui is the terminal presentation layer of the demo widgets.
package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	"github.com/slok/checkmycrypto/internal/widget/risk"
	"github.com/slok/checkmycrypto/internal/widget/scan"
	"github.com/slok/checkmycrypto/internal/widget/workflow"
)

// DemoConfig is the configuration for the interactive demo.
type DemoConfig struct {
	Executor scheduler.Executor
	Demo     model.DemoConfig
	Logger   log.Logger
}

func (c *DemoConfig) defaults() error {
	if c.Executor == nil {
		return fmt.Errorf("executor is required")
	}

	if err := c.Demo.Validate(); err != nil {
		return fmt.Errorf("invalid demo config: %w", err)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "ui.Demo"})

	return nil
}

// Demo mounts the three widgets and renders them in the terminal until the
// user quits.
type Demo struct {
	executor scheduler.Executor
	demo     model.DemoConfig
	logger   log.Logger
}

// NewDemo returns a new interactive demo.
func NewDemo(cfg DemoConfig) (*Demo, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Demo{
		executor: cfg.Executor,
		demo:     cfg.Demo,
		logger:   cfg.Logger,
	}, nil
}

// Run runs the demo, it blocks until the user quits or the context is cancelled.
// Widgets are unmounted on return.
func (d *Demo) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	var (
		sim      *scan.Simulator
		cycler   *workflow.Cycler
		initial  demoModel
		mountErr error
	)

	err := d.executor.Do(ctx, func() {
		sim, mountErr = scan.NewSimulator(scan.SimulatorConfig{
			Scheduler: d.executor,
			Addresses: d.demo.Addresses,
			ScanDelay: d.demo.ScanDelay,
			Logger:    d.logger,
		})
		if mountErr != nil {
			return
		}

		cycler, mountErr = workflow.NewCycler(workflow.CyclerConfig{
			Scheduler: d.executor,
			Period:    d.demo.WorkflowPeriod,
			Stages:    d.demo.WorkflowStages,
			Logger:    d.logger,
		})
		if mountErr != nil {
			return
		}

		initial = demoModel{
			scan:     sim.State(),
			workflow: cycler.State(),
			risk:     risk.NewDisplay().Distribution(),
		}
	})
	// Unmount on every exit path.
	defer d.executor.Post(func() {
		if sim != nil {
			sim.Dispose()
		}
		if cycler != nil {
			cycler.Dispose()
		}
	})
	if err != nil {
		return fmt.Errorf("could not mount widgets: %w", err)
	}
	if mountErr != nil {
		return fmt.Errorf("could not mount widgets: %w", mountErr)
	}

	initial.actions = actions{
		nextAddress: func() { d.executor.Post(sim.SelectNextAddress) },
		startScan:   func() { d.executor.Post(sim.StartScan) },
	}

	p := tea.NewProgram(initial,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	// Subscriptions run on the executor and hand the states to the program in
	// order. Send only blocks until the program loop is running, and returns
	// right away once the program has finished.
	err = d.executor.Do(ctx, func() {
		sim.Subscribe(func(st model.ScanState) { p.Send(scanMsg(st)) })
		cycler.Subscribe(func(st model.WorkflowState) { p.Send(workflowMsg(st)) })
	})
	if err != nil {
		return fmt.Errorf("could not subscribe to widgets: %w", err)
	}

	d.logger.Debugf("Demo started")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("demo: %w", err)
	}

	return nil
}

type scanMsg model.ScanState

type workflowMsg model.WorkflowState

type actions struct {
	nextAddress func()
	startScan   func()
}

type demoModel struct {
	scan     model.ScanState
	workflow model.WorkflowState
	risk     model.RiskDistribution
	actions  actions
	quitting bool
}

func (m demoModel) Init() tea.Cmd { return nil }

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "n", "tab":
			if m.actions.nextAddress != nil {
				m.actions.nextAddress()
			}
		case "enter", "s":
			if m.actions.startScan != nil {
				m.actions.startScan()
			}
		}
	case scanMsg:
		m.scan = model.ScanState(msg)
	case workflowMsg:
		m.workflow = model.WorkflowState(msg)
	}

	return m, nil
}

func (m demoModel) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScan(m.scan),
		RenderWorkflow(m.workflow),
		RenderRisk(m.risk),
		mutedStyle.Render("[n] switch address  [enter] check  [q] quit"),
	) + "\n"
}
