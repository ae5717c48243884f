package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nextgearshop/storefront/internal/money"
)

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	*RootOptions
	CatalogDir string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show one product's detail view",
		Long: `Show a product's full detail: description, rating, availability, and
customer comments (newest first).

Examples:
  storefront show 1
  storefront show 5 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogDir, "catalog", "", "directory of CUE catalog files (default: built-in seed)")

	return cmd
}

func runShow(opts *ShowOptions, rawID string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid product id %q", rawID)
		if outErr := formatter.Error(ErrCodeGeneric, msg, nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, msg)
	}

	cat, err := LoadCatalog(opts.CatalogDir)
	if err != nil {
		return catalogLoadError(formatter, err)
	}

	p, ok := cat.ByID(id)
	if !ok {
		msg := fmt.Sprintf("no product with id %d", id)
		if outErr := formatter.Error(ErrCodeNotFound, msg, nil); outErr != nil {
			return outErr
		}
		return NewExitError(ExitFailure, msg)
	}

	if wrote, err := formatter.JSON(p); wrote || err != nil {
		return err
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s (#%d)\n", p.Name, p.ID)
	fmt.Fprintf(w, "%s | %s | %.1f stars (%d reviews) | %s\n",
		p.Category, money.Format(p.Price), p.Rating, p.ReviewCount, stockLabel(p))
	fmt.Fprintf(w, "\n%s\n", p.Description)
	if len(p.Comments) > 0 {
		fmt.Fprintf(w, "\nComments:\n")
		for _, c := range p.Comments {
			fmt.Fprintf(w, "  [%s] %s: %s\n", c.Date, c.Author, c.Text)
		}
	}
	return nil
}
