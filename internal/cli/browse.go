package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nextgearshop/storefront/internal/catalog"
	"github.com/nextgearshop/storefront/internal/filter"
	"github.com/nextgearshop/storefront/internal/money"
)

// BrowseOptions holds flags for the browse command.
type BrowseOptions struct {
	*RootOptions
	CatalogDir string
	Search     string
	Category   string
	MaxPrice   float64
	Stock      string
	Sort       string
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BrowseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "List catalog products through the filter pipeline",
		Long: `List the catalog filtered and sorted the way the shop page displays it.

All four predicates are applied together: category, case-insensitive name
search, inclusive price ceiling, and stock availability. An empty result
is not an error.

Examples:
  storefront browse
  storefront browse --search headphones --sort price-asc
  storefront browse --category Audio --max-price 100 --stock in-stock
  storefront browse --catalog ./catalog --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "", "directory of CUE catalog files (default: built-in seed)")
	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive name search term")
	cmd.Flags().StringVar(&opts.Category, "category", filter.CategoryAll, "category label (All matches everything)")
	cmd.Flags().Float64Var(&opts.MaxPrice, "max-price", -1, "inclusive price ceiling (default: catalog maximum)")
	cmd.Flags().StringVar(&opts.Stock, "stock", string(filter.StockAny), "stock filter (all|in-stock|out-of-stock)")
	cmd.Flags().StringVar(&opts.Sort, "sort", string(filter.SortDefault), "sort order (default|price-asc|price-desc)")

	return cmd
}

func runBrowse(opts *BrowseOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cat, err := LoadCatalog(opts.CatalogDir)
	if err != nil {
		return catalogLoadError(formatter, err)
	}
	formatter.VerboseLog("catalog loaded: %d products, max price %s", cat.Len(), money.Format(cat.MaxPrice()))

	state := filter.NewState(cat)
	state.SetSearchTerm(opts.Search)
	state.SetCategory(opts.Category)
	if opts.MaxPrice >= 0 {
		state.SetPriceCeiling(opts.MaxPrice)
	}
	if err := state.SetStock(filter.StockFilter(opts.Stock)); err != nil {
		if outErr := formatter.Error(ErrCodeInvalidFilter, err.Error(), nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, err.Error())
	}
	if err := state.SetSort(filter.SortOrder(opts.Sort)); err != nil {
		if outErr := formatter.Error(ErrCodeInvalidFilter, err.Error(), nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, err.Error())
	}

	view := filter.View(cat, state)

	if wrote, err := formatter.JSON(view); wrote || err != nil {
		return err
	}

	if len(view) == 0 {
		fmt.Fprintln(formatter.Writer, "No products match the current filters.")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tSTOCK")
	for _, p := range view {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f (%d)\t%s\n",
			p.ID, p.Name, p.Category, money.Format(p.Price), p.Rating, p.ReviewCount, stockLabel(p))
	}
	return w.Flush()
}

// stockLabel renders the availability column.
func stockLabel(p catalog.Product) string {
	if p.InStock {
		return "in stock"
	}
	return "out of stock"
}

// catalogLoadError renders a LoadError and converts it to an exit code.
func catalogLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		if outErr := formatter.Error(loadErr.Code, loadErr.Message, nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, loadErr.Message)
	}
	if outErr := formatter.Error(ErrCodeGeneric, err.Error(), nil); outErr != nil {
		return outErr
	}
	return WrapExitError(ExitCommandError, "load catalog", err)
}
