package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/xrinput/internal/presentation/tui"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/catalog"
	"github.com/spf13/cobra"
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Show the physical bindings a registration would create",
	Long: `Registers the action catalog against an in-memory runtime, honoring the configured
disabled profiles, and prints every binding created or skipped.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBindings(cmd); err != nil {
			fmt.Printf("Bindings failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func runBindings(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := catalog.Materialize(context.Background(), memory.NewHost(), catalog.Default(),
		catalog.WithDisabledProfiles(cfg.DisabledProfiles...),
		catalog.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	out, err := tui.NewRenderer()(tui.BindingsMarkdown(res))
	if err != nil {
		return fmt.Errorf("failed to render bindings: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
}
