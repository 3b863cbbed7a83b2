// internal/adapters/in/cli/checkout.go
package cli

import (
	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Run the configured checkout flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.c.CheckoutUC.Checkout(cmd.Context()); err != nil {
			return err
		}
		renderFooter(current.out, current)
		return nil
	},
}
