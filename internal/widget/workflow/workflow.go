// Package workflow has the free running workflow stage cycler that narrates
// how the bot works.
package workflow

import (
	"fmt"
	"slices"
	"time"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	"github.com/slok/checkmycrypto/internal/widget"
)

// CyclerConfig is the configuration for the workflow cycler.
type CyclerConfig struct {
	Scheduler scheduler.Scheduler
	// Period is the time between stages. Defaults to model.DefaultWorkflowPeriod.
	Period time.Duration
	// Stages defaults to model.DefaultWorkflowStages.
	Stages []model.WorkflowStage
	Logger log.Logger
}

func (c *CyclerConfig) defaults() error {
	if c.Scheduler == nil {
		return fmt.Errorf("scheduler is required")
	}

	if c.Period == 0 {
		c.Period = model.DefaultWorkflowPeriod
	}
	if c.Period < 0 {
		return fmt.Errorf("period must be positive: %w", model.ErrNotValid)
	}

	if c.Stages == nil {
		c.Stages = model.DefaultWorkflowStages()
	}
	if len(c.Stages) == 0 {
		return fmt.Errorf("at least one stage is required: %w", model.ErrNotValid)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "widget.Workflow"})

	return nil
}

// Cycler advances the workflow stage on every period while mounted.
//
// It's not safe for concurrent use, the owner must serialize the calls with
// the scheduler callbacks.
type Cycler struct {
	id       string
	stage    int
	stages   []model.WorkflowStage
	ticker   scheduler.Handle
	disposed bool
	notifier widget.Notifier[model.WorkflowState]
	logger   log.Logger
}

// NewCycler returns a new cycler at stage 0, the repeating timer starts right away.
func NewCycler(cfg CyclerConfig) (*Cycler, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	id := widget.NewID()
	c := &Cycler{
		id:     id,
		stages: slices.Clone(cfg.Stages),
		logger: cfg.Logger.WithValues(log.Kv{"id": id}),
	}
	c.ticker = cfg.Scheduler.Every(cfg.Period, c.Tick)
	c.logger.Debugf("Workflow cycler mounted")

	return c, nil
}

// ID returns the instance ID.
func (c *Cycler) ID() string { return c.id }

// State returns a snapshot of the current state.
func (c *Cycler) State() model.WorkflowState {
	return model.WorkflowState{
		Stage:  c.stage,
		Stages: slices.Clone(c.stages),
	}
}

// Subscribe registers fn to receive every stage change.
func (c *Cycler) Subscribe(fn func(model.WorkflowState)) (unsubscribe func()) {
	if c.disposed {
		return func() {}
	}
	return c.notifier.Subscribe(fn)
}

// Tick advances to the next stage, wrapping to the first one after the last.
func (c *Cycler) Tick() {
	if c.disposed {
		return
	}

	c.stage = (c.stage + 1) % len(c.stages)
	c.logger.Debugf("Workflow stage %d: %s", c.stage, c.stages[c.stage].Caption)

	c.notifier.Notify(c.State())
}

// Dispose stops the cycler. Calling it more than once is a no-op.
func (c *Cycler) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	c.ticker.Cancel()
	c.notifier.Clear()
	c.logger.Debugf("Workflow cycler disposed")
}

// Disposed returns true if the cycler has been disposed.
func (c *Cycler) Disposed() bool { return c.disposed }
