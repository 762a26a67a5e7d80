package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/checkmycrypto/internal/printer"
	"github.com/slok/checkmycrypto/internal/widget/risk"
)

type RiskCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewRiskCommand returns the risk command.
func NewRiskCommand(rootCmd *RootCommand, app *kingpin.Application) *RiskCommand {
	c := &RiskCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("risk", "Show the risk distribution.")
	c.Cmd.Flag("format", "Output format (table, json).").Default(printer.FormatTable).EnumVar(&c.format, printer.FormatTable, printer.FormatJSON)

	return c
}

func (c RiskCommand) Name() string { return c.Cmd.FullCommand() }

func (c RiskCommand) Run(ctx context.Context) error {
	p := printer.New(c.format, c.rootCmd.Stdout)
	if err := p.PrintRisk(risk.NewDisplay().Distribution()); err != nil {
		return fmt.Errorf("could not print risk distribution: %w", err)
	}

	return nil
}
