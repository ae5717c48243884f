package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nextgearshop/storefront/internal/money"
	"github.com/nextgearshop/storefront/internal/store"
)

// OrdersOptions holds flags for the orders command.
type OrdersOptions struct {
	*RootOptions
	Database string
	Number   string // optional - look up a single order
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OrdersOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List recorded orders from the journal",
		Long: `List orders recorded in a journal database, or look one up by number
the way the order confirmation view does.

Examples:
  storefront orders --db ./orders.db
  storefront orders --db ./orders.db --number NGS-0192cafe-...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the order journal database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Number, "number", "", "show a single order by order number")

	return cmd
}

func runOrders(opts *OrdersOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	journal, err := store.Open(opts.Database)
	if err != nil {
		if outErr := formatter.Error(ErrCodeNotFound, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "open order journal", err)
	}
	defer journal.Close()

	if opts.Number != "" {
		return showOrder(formatter, journal, opts.Number, cmd)
	}

	records, err := journal.ListOrders(cmd.Context())
	if err != nil {
		if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "list orders", err)
	}

	if wrote, err := formatter.JSON(records); wrote || err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "No orders recorded.")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tITEMS\tTOTAL\tPLACED AT")
	for _, rec := range records {
		var items int
		for _, it := range rec.Items {
			items += it.Quantity
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", rec.Number, items, money.Format(rec.Total), rec.PlacedAt)
	}
	return w.Flush()
}

// showOrder renders a single journal entry, confirmation-view style.
func showOrder(formatter *OutputFormatter, journal *store.Journal, number string, cmd *cobra.Command) error {
	rec, err := journal.ReadOrder(cmd.Context(), number)
	if errors.Is(err, store.ErrNotFound) {
		if outErr := formatter.Error(ErrCodeNotFound, err.Error(), nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, err.Error())
	}
	if err != nil {
		if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "read order", err)
	}

	if wrote, err := formatter.JSON(rec); wrote || err != nil {
		return err
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Order %s (placed %s)\n", rec.Number, rec.PlacedAt)
	for _, it := range rec.Items {
		fmt.Fprintf(w, "  %dx %s @ %s\n", it.Quantity, it.Product.Name, money.Format(it.Product.Price))
	}
	fmt.Fprintf(w, "  Subtotal: %s\n", money.Format(rec.Subtotal))
	fmt.Fprintf(w, "  Shipping: %s\n", money.Format(rec.Shipping))
	fmt.Fprintf(w, "  Tax:      %s\n", money.Format(rec.Tax))
	fmt.Fprintf(w, "  Total:    %s\n", money.Format(rec.Total))
	return nil
}
