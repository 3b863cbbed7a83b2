// internal/adapters/in/cli/product.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shopfront/internal/application/query/dto"
	"shopfront/internal/application/usecase"
)

var (
	flagProductAdd bool
	flagProductQty int
)

var productCmd = &cobra.Command{
	Use:   "product <product-id>",
	Short: "Show a product card, optionally adding it to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		snaps, err := current.c.Catalog.DetailsByIDs(cmd.Context(), []int{id})
		if err != nil {
			return err
		}
		var found bool
		for _, s := range snaps {
			if s.ID != id {
				continue
			}
			found = true
			fmt.Fprintln(current.out, styleTitle.Render(s.Name))
			fmt.Fprintln(current.out, "Price: "+dto.FormatAmount(s.Price))
			fmt.Fprintln(current.out, "Stock: "+fmt.Sprint(s.Stock))
			fmt.Fprintln(current.out, styleMuted.Render(s.ImageOrPlaceholder()))

			if flagProductAdd {
				// a ceiling rejection already posted its notice; the
				// footer below surfaces it
				if _, err := current.c.CartUC.Add(cmd.Context(), id, flagProductQty, s.Stock); err != nil && !errors.Is(err, usecase.ErrStockExceeded) {
					return err
				}
			}
		}
		if !found {
			return fmt.Errorf("product %d not found", id)
		}

		if _, err := current.c.Badge.Refresh(cmd.Context()); err != nil {
			current.c.Log.Warn("badge refresh failed", "error", err)
		}
		renderFooter(current.out, current)
		return nil
	},
}

func init() {
	productCmd.Flags().BoolVar(&flagProductAdd, "add", false, "add the product to the cart")
	productCmd.Flags().IntVar(&flagProductQty, "qty", 1, "quantity when adding")
}
