// internal/adapters/in/cli/cart.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shopfront/internal/application/usecase"
)

var (
	flagQty   int
	flagStock int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect and mutate the cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the reconciled cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCart(cmd.Context(), current)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stock, err := resolveStock(cmd.Context(), current, id, cmd.Flags().Changed("stock"))
		if err != nil {
			return err
		}
		return runCartMutation(cmd.Context(), current, func() error {
			_, err := current.c.CartUC.Add(cmd.Context(), id, flagQty, stock)
			return err
		})
	},
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <product-id>",
	Short: "Increment a cart row by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		stock, err := resolveStock(cmd.Context(), current, id, cmd.Flags().Changed("stock"))
		if err != nil {
			return err
		}
		return runCartMutation(cmd.Context(), current, func() error {
			_, err := current.c.CartUC.Increment(cmd.Context(), id, stock)
			return err
		})
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <product-id>",
	Short: "Decrement a cart row by one (floor of 1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := current.c.CartUC.Decrement(cmd.Context(), id); err != nil {
			return err
		}
		return showCart(cmd.Context(), current)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:     "rm <product-id>",
	Aliases: []string{"remove"},
	Short:   "Remove a cart row",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := current.c.CartUC.Remove(cmd.Context(), id); err != nil {
			return err
		}
		return showCart(cmd.Context(), current)
	},
}

func init() {
	cartAddCmd.Flags().IntVar(&flagQty, "qty", 1, "quantity to add")
	cartAddCmd.Flags().IntVar(&flagStock, "stock", 0, "stock ceiling (default: resolved from the catalog)")
	cartIncCmd.Flags().IntVar(&flagStock, "stock", 0, "stock ceiling (default: resolved from the catalog)")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartIncCmd)
	cartCmd.AddCommand(cartDecCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}

// runCartMutation applies the mutation and re-renders the page. A stock
// rejection is a page outcome, not a command failure: the capacity notice
// is already posted and must reach the footer.
func runCartMutation(ctx context.Context, a *app, mutate func() error) error {
	if err := mutate(); err != nil && !errors.Is(err, usecase.ErrStockExceeded) {
		return err
	}
	return showCart(ctx, a)
}

// showCart runs a full reconciliation pass, refreshes the badge and prints
// the result.
func showCart(ctx context.Context, a *app) error {
	view, err := a.c.CartView.Render(ctx)
	if err != nil {
		return err
	}
	if _, err := a.c.Badge.Refresh(ctx); err != nil {
		a.c.Log.Warn("badge refresh failed", "error", err)
	}
	renderCartView(a.out, view)
	renderFooter(a.out, a)
	return nil
}

// resolveStock returns the stock ceiling for a mutation. The --stock flag
// mirrors the value a product card carries; without it the ceiling comes
// from a fresh catalog snapshot. An unreachable catalog falls back to the
// unbounded sentinel, the same as a control with no stock attribute.
func resolveStock(ctx context.Context, a *app, id int, flagSet bool) (int, error) {
	if flagSet {
		return flagStock, nil
	}
	snaps, err := a.c.Catalog.DetailsByIDs(ctx, []int{id})
	if err != nil {
		a.c.Log.Warn("stock lookup failed, ceiling disabled", "id", id, "error", err)
		return usecase.StockUnbounded, nil
	}
	for _, s := range snaps {
		if s.ID == id {
			return s.Stock, nil
		}
	}
	return 0, fmt.Errorf("product %d not found", id)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", raw)
	}
	return id, nil
}
