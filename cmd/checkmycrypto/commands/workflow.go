package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/checkmycrypto/internal/app/workflow"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/printer"
	"github.com/slok/checkmycrypto/internal/scheduler"
)

type WorkflowCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	cycles int
	format string
}

// NewWorkflowCommand returns the workflow command.
func NewWorkflowCommand(rootCmd *RootCommand, app *kingpin.Application) *WorkflowCommand {
	c := &WorkflowCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("workflow", "Follow the bot workflow stages.")
	c.Cmd.Flag("cycles", "Number of stage changes to follow (0 follows until interrupted).").Default("4").IntVar(&c.cycles)
	c.Cmd.Flag("format", "Output format (table, json).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON)

	return c
}

func (c WorkflowCommand) Name() string { return c.Cmd.FullCommand() }

func (c WorkflowCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	demo, err := c.rootCmd.LoadDemoConfig(ctx)
	if err != nil {
		return err
	}

	return runWithLoop(ctx, logger, func(ctx context.Context, loop *scheduler.Loop) error {
		svc, err := workflow.NewService(workflow.ServiceConfig{
			Executor: loop,
			Demo:     demo,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("could not create service: %w", err)
		}

		p := printer.New(c.format, c.rootCmd.Stdout)
		_, err = svc.Run(ctx, workflow.Request{
			Cycles: c.cycles,
			OnStage: func(st model.WorkflowState) {
				if err := p.PrintWorkflowStage(st); err != nil {
					logger.Warningf("could not print workflow stage: %s", err)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("could not follow workflow: %w", err)
		}

		return nil
	})
}
