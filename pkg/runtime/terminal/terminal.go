package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/spot-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/spot-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/spf13/cobra"
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
)

// CLI represents the command-line interface
type CLI struct {
	registry pricing.Registry
	tariffs  tariff.Store
	defaults commands.CalculateDefaults
	output   io.Writer
	format   string
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry pricing.Registry
	Tariffs  tariff.Store
	Defaults commands.CalculateDefaults
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = pricing.DefaultRegistry()
	}
	if opts.Tariffs == nil {
		opts.Tariffs = tariff.NewDefaultStore()
	}
	if opts.Defaults.PricesSource == "" {
		opts.Defaults.PricesSource = pricing.SourceStatic
	}

	cli := &CLI{
		registry: opts.Registry,
		tariffs:  opts.Tariffs,
		defaults: opts.Defaults,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context, args ...string) error {
	if args != nil {
		cli.rootCmd.SetArgs(args)
	}
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) reporter() commands.ReportHandler {
	if cli.format == FormatPlain {
		return NewReporter(cli.output)
	}
	return export.NewReporter(cli.output)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spot",
		Short:         "Spot electricity price estimates for TDD tariff profiles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if cli.format != FormatTable && cli.format != FormatPlain {
				return fmt.Errorf("unknown output format %q", cli.format)
			}
			return nil
		},
	}
	cmd.SetOut(cli.output)
	cmd.PersistentFlags().StringVar(&cli.format, "format", FormatTable, "Output format (table, plain)")

	cmd.AddCommand(commands.NewCalculateCmd(cli.registry, cli.tariffs, cli.defaults, cli.reporter))
	cmd.AddCommand(commands.NewTariffsCmd(cli.tariffs, cli.reporter))
	cmd.AddCommand(commands.NewCommodityCmd(cli.reporter))
	cmd.AddCommand(commands.NewRealisedCmd(cli.reporter))
	cmd.AddCommand(commands.NewRateCmd(cli.defaults.RateMap, cli.reporter))

	return cmd
}
