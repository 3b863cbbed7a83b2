// internal/adapters/in/cli/browse.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shopfront/internal/domain/browse"
)

var (
	flagPriceMin string
	flagPriceMax string
	flagSort     string
	flagSearch   string
	flagCategory string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Shape the browsing location (filters, sort, search)",
}

var browseShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current browsing location",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := current.c.State.LoadLocation(cmd.Context())
		if err != nil {
			return err
		}
		q := browse.Parse(raw)
		fmt.Fprintln(current.out, locationURL(current, q))
		if s := q.Sort(); s != browse.SortNone {
			fmt.Fprintln(current.out, styleMuted.Render("sort: "+s))
		}
		return nil
	},
}

var browseFilterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Apply price, sort and search filters in one pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateLocation(cmd.Context(), current, func(q *browse.QueryState) {
			if cmd.Flags().Changed("category") {
				q.SetCategory(flagCategory)
			}
			// flags left unset keep their current values, the way form
			// controls are seeded from the address on load
			c := browse.Controls{
				PriceMin: q.Get(browse.KeyPriceMin),
				PriceMax: q.Get(browse.KeyPriceMax),
				Sort:     q.Sort(),
				Search:   flagSearch,
			}
			if cmd.Flags().Changed("price-min") {
				c.PriceMin = flagPriceMin
			}
			if cmd.Flags().Changed("price-max") {
				c.PriceMax = flagPriceMax
			}
			if cmd.Flags().Changed("sort") {
				c.Sort = flagSort
			}
			q.ApplyAllFilters(c)
		})
	},
}

var browseResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the price and sort filters, keeping category and search",
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutateLocation(cmd.Context(), current, func(q *browse.QueryState) {
			q.ResetFilters()
		})
	},
}

var browseSearchCmd = &cobra.Command{
	Use:   "search [terms]",
	Short: "Search within the current price range",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		return mutateLocation(cmd.Context(), current, func(q *browse.QueryState) {
			q.PerformSearch(input)
		})
	},
}

func init() {
	browseFilterCmd.Flags().StringVar(&flagPriceMin, "price-min", "", "minimum price")
	browseFilterCmd.Flags().StringVar(&flagPriceMax, "price-max", "", "maximum price")
	browseFilterCmd.Flags().StringVar(&flagSort, "sort", browse.SortNone, "sort code ("+browse.SortNone+" = none)")
	browseFilterCmd.Flags().StringVar(&flagSearch, "search", "", "search terms")
	browseFilterCmd.Flags().StringVar(&flagCategory, "category", "", "category (retained unless explicitly cleared)")

	browseCmd.AddCommand(browseShowCmd)
	browseCmd.AddCommand(browseFilterCmd)
	browseCmd.AddCommand(browseResetCmd)
	browseCmd.AddCommand(browseSearchCmd)
}

// mutateLocation loads the persisted location, applies the mutation,
// persists the canonical encoding and navigates to it.
func mutateLocation(ctx context.Context, a *app, fn func(*browse.QueryState)) error {
	raw, err := a.c.State.LoadLocation(ctx)
	if err != nil {
		return err
	}
	q := browse.Parse(raw)
	fn(&q)

	encoded := q.Encode()
	if err := a.c.State.SaveLocation(ctx, encoded); err != nil {
		return err
	}
	a.nav.Navigate(locationURL(a, q))
	renderFooter(a.out, a)
	return nil
}

// locationURL renders the full browsing URL against the configured base.
func locationURL(a *app, q browse.QueryState) string {
	base := a.cfg.BaseURL
	if enc := q.Encode(); enc != "" {
		return base + "/?" + enc
	}
	return base + "/"
}
