package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/checkmycrypto/internal/printer"
)

type AddressesCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewAddressesCommand returns the addresses command.
func NewAddressesCommand(rootCmd *RootCommand, app *kingpin.Application) *AddressesCommand {
	c := &AddressesCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("addresses", "List the demo addresses and their outcome.")
	c.Cmd.Flag("format", "Output format (table, json).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON)

	return c
}

func (c AddressesCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddressesCommand) Run(ctx context.Context) error {
	demo, err := c.rootCmd.LoadDemoConfig(ctx)
	if err != nil {
		return err
	}

	p := printer.New(c.format, c.rootCmd.Stdout)
	if err := p.PrintAddresses(demo.Addresses); err != nil {
		return fmt.Errorf("could not print addresses: %w", err)
	}

	return nil
}
