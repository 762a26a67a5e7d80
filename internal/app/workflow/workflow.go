package workflow

import (
	"context"
	"fmt"

	"github.com/slok/checkmycrypto/internal/log"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/scheduler"
	widgetworkflow "github.com/slok/checkmycrypto/internal/widget/workflow"
)

// ServiceConfig is the configuration for the workflow service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Workflow"})

	return nil
}

// Service mounts a workflow cycler and follows its stages.
type Service struct {
	executor scheduler.Executor
	demo     model.DemoConfig
	logger   log.Logger
}

// NewService creates a new workflow service.
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

// Request represents the workflow request parameters.
type Request struct {
	// Cycles is the number of stage changes to follow, 0 or less follows until
	// the context is cancelled.
	Cycles int
	// OnStage is called with the initial stage and on every stage change, from
	// the executor goroutine.
	OnStage func(model.WorkflowState)
}

// Run follows the workflow stages and returns the last state seen.
func (s *Service) Run(ctx context.Context, req Request) (*model.WorkflowState, error) {
	s.logger.Debugf("following workflow for %d cycles", req.Cycles)

	done := make(chan model.WorkflowState, 1)
	var cycler *widgetworkflow.Cycler
	var cyclerErr error
	var last model.WorkflowState
	err := s.executor.Do(ctx, func() {
		cycler, cyclerErr = widgetworkflow.NewCycler(widgetworkflow.CyclerConfig{
			Scheduler: s.executor,
			Period:    s.demo.WorkflowPeriod,
			Stages:    s.demo.WorkflowStages,
			Logger:    s.logger,
		})
		if cyclerErr != nil {
			return
		}

		last = cycler.State()
		if req.OnStage != nil {
			req.OnStage(last)
		}

		ticks := 0
		cycler.Subscribe(func(st model.WorkflowState) {
			last = st
			ticks++
			if req.OnStage != nil {
				req.OnStage(st)
			}
			if req.Cycles > 0 && ticks == req.Cycles {
				cycler.Dispose()
				done <- st
			}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not mount workflow cycler: %w", err)
	}
	if cyclerErr != nil {
		return nil, fmt.Errorf("could not start workflow: %w", cyclerErr)
	}
	defer s.executor.Post(cycler.Dispose)

	select {
	case st := <-done:
		return &st, nil
	case <-ctx.Done():
		// The executor could be stopped already, in that case nothing else can
		// change the state.
		var st model.WorkflowState
		if err := s.executor.Do(context.Background(), func() { st = last }); err != nil {
			return nil, ctx.Err()
		}
		return &st, nil
	}
}
