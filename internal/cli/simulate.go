package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nextgearshop/storefront/internal/harness"
	"github.com/nextgearshop/storefront/internal/store"
)

// SimulateOptions holds flags for the simulate command.
type SimulateOptions struct {
	*RootOptions
	CatalogDir string
	Database   string
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SimulateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Run a scripted shopping scenario",
		Long: `Run a YAML shopping scenario through the cart engine and print the
resulting receipts.

Scenario steps drive the engine exactly like UI actions would: add, remove,
update, clear, assert, checkout. Placed orders are recorded in the order
journal so a following 'storefront orders --db ...' can list them.

Exit codes: 0 if every assertion held, 1 on assertion failure, 2 on a
scenario that cannot run.

Examples:
  storefront simulate testdata/scenarios/weekend_order.yaml
  storefront simulate demo.yaml --db ./orders.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "", "directory of CUE catalog files (default: built-in seed)")
	cmd.Flags().StringVar(&opts.Database, "db", store.MemoryDSN, "path to the order journal database")

	return cmd
}

// simulateReport is the JSON payload for a simulate run.
type simulateReport struct {
	ScenarioName string            `json:"scenario_name"`
	Pass         bool              `json:"pass"`
	Receipts     []harness.Receipt `json:"receipts"`
	Failures     []string          `json:"failures,omitempty"`
}

func runSimulate(opts *SimulateOptions, scenarioPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	scenario, err := harness.LoadScenario(scenarioPath)
	if err != nil {
		if outErr := formatter.Error(ErrCodeLoadFailed, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "load scenario", err)
	}

	cat, err := LoadCatalog(opts.CatalogDir)
	if err != nil {
		return catalogLoadError(formatter, err)
	}

	result, err := harness.Run(scenario, cat)
	if err != nil {
		if outErr := formatter.Error(ErrCodeScenario, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "run scenario", err)
	}

	if err := recordOrders(opts, cmd, result); err != nil {
		return err
	}

	report := simulateReport{
		ScenarioName: result.ScenarioName,
		Pass:         result.Pass(),
		Receipts:     result.Receipts,
	}
	for _, assertErr := range result.Errors {
		report.Failures = append(report.Failures, assertErr.Error())
	}

	if wrote, err := formatter.JSON(report); wrote || err != nil {
		if err != nil {
			return err
		}
		if !report.Pass {
			return NewExitError(ExitFailure, "scenario assertions failed")
		}
		return nil
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Scenario: %s\n", result.ScenarioName)
	for _, receipt := range result.Receipts {
		fmt.Fprintf(w, "\nOrder %s\n", receipt.OrderNumber)
		for _, line := range receipt.Lines {
			fmt.Fprintf(w, "  %dx %s @ %s = %s\n", line.Quantity, line.Name, line.UnitPrice, line.LineTotal)
		}
		fmt.Fprintf(w, "  Subtotal: %s\n", receipt.Subtotal)
		fmt.Fprintf(w, "  Shipping: %s\n", receipt.Shipping)
		fmt.Fprintf(w, "  Tax:      %s\n", receipt.Tax)
		fmt.Fprintf(w, "  Total:    %s\n", receipt.Total)
	}

	if !report.Pass {
		fmt.Fprintf(w, "\nFailures:\n")
		for _, failure := range report.Failures {
			fmt.Fprintf(w, "  %s\n", failure)
		}
		return NewExitError(ExitFailure, "scenario assertions failed")
	}

	fmt.Fprintf(w, "\nPASS\n")
	return nil
}

// recordOrders writes placed orders to the journal. With the default
// in-memory DSN the journal evaporates when the command exits, which is
// the no-persistence default; a file path makes recording observable.
func recordOrders(opts *SimulateOptions, cmd *cobra.Command, result *harness.Result) error {
	if len(result.Orders) == 0 {
		return nil
	}

	journal, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open order journal", err)
	}
	defer journal.Close()

	for _, order := range result.Orders {
		if err := journal.Record(cmd.Context(), order); err != nil {
			return WrapExitError(ExitCommandError, "record order", err)
		}
	}
	return nil
}
