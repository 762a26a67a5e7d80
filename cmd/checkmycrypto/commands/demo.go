package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/checkmycrypto/internal/scheduler"
	"github.com/slok/checkmycrypto/internal/ui"
)

type DemoCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewDemoCommand returns the demo command.
func NewDemoCommand(rootCmd *RootCommand, app *kingpin.Application) *DemoCommand {
	c := &DemoCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("demo", "Run the interactive widgets demo.")

	return c
}

func (c DemoCommand) Name() string { return c.Cmd.FullCommand() }

func (c DemoCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	demo, err := c.rootCmd.LoadDemoConfig(ctx)
	if err != nil {
		return err
	}

	return runWithLoop(ctx, logger, func(ctx context.Context, loop *scheduler.Loop) error {
		d, err := ui.NewDemo(ui.DemoConfig{
			Executor: loop,
			Demo:     demo,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("could not create demo: %w", err)
		}

		return d.Run(ctx, c.rootCmd.Stdin, c.rootCmd.Stdout)
	})
}
