package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/checkmycrypto/internal/app/scan"
	"github.com/slok/checkmycrypto/internal/model"
	"github.com/slok/checkmycrypto/internal/printer"
	"github.com/slok/checkmycrypto/internal/scheduler"
)

type ScanCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	address string
	format  string
}

// NewScanCommand returns the scan command.
func NewScanCommand(rootCmd *RootCommand, app *kingpin.Application) *ScanCommand {
	c := &ScanCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("scan", "Run a demo scan of a demo address.")
	c.Cmd.Flag("address", "Demo address to scan, defaults to the first one.").StringVar(&c.address)
	c.Cmd.Flag("format", "Output format (table, json).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON)

	return c
}

func (c ScanCommand) Name() string { return c.Cmd.FullCommand() }

func (c ScanCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	demo, err := c.rootCmd.LoadDemoConfig(ctx)
	if err != nil {
		return err
	}

	return runWithLoop(ctx, logger, func(ctx context.Context, loop *scheduler.Loop) error {
		svc, err := scan.NewService(scan.ServiceConfig{
			Executor: loop,
			Demo:     demo,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("could not create service: %w", err)
		}

		state, err := svc.Run(ctx, scan.Request{
			Address: c.address,
			OnChange: func(st model.ScanState) {
				if st.Phase == model.ScanPhaseScanning {
					logger.Infof("Scanning the blockchain for %s...", st.Address.Value)
				}
			},
		})
		if err != nil {
			return fmt.Errorf("could not scan address: %w", err)
		}

		p := printer.New(c.format, c.rootCmd.Stdout)
		if err := p.PrintScan(*state); err != nil {
			return fmt.Errorf("could not print scan: %w", err)
		}

		return nil
	})
}
