// internal/adapters/in/cli/root.go

// Package cli is the inbound adapter: cobra commands over the storefront
// runtime. Each invocation is one "page interaction": load state, run the
// operation, re-render, surface notices.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shopfront/internal/infra/config"
	"shopfront/internal/platform/di"
)

// Version is stamped at build time.
var Version = "dev"

// Global flag values.
var (
	flagConfig string
)

// app bundles the wired container with the per-invocation presentation
// sinks. Commands reach it through the package-level current.
type app struct {
	cfg   *config.Config
	c     *di.Container
	nav   *navRecorder
	badge *badgeRecorder
	out   io.Writer
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "shopfront",
	Short:         "shopfront is a storefront cart and browse runtime",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		nav := &navRecorder{}
		badge := &badgeRecorder{}
		c, err := di.Build(cmd.Context(), cfg, di.Options{Nav: nav, Badge: badge})
		if err != nil {
			return err
		}

		current = &app{cfg: cfg, c: c, nav: nav, badge: badge, out: cmd.OutOrStdout()}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.c.Close()
			current = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ~/.shopfront/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(productCmd)
	rootCmd.AddCommand(checkoutCmd)
}

// Execute runs the root command and reports the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error: "+err.Error()))
		return 1
	}
	return 0
}
