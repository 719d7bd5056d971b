package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/xrinput"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration against the action catalog",
	Long: `Loads the config, checks every bimanual action has a usable release threshold
and performs a dry-run registration against an in-memory runtime.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	discard := ports.ConsumerFunc(func(domain.Phase, domain.EventData) {})
	_, err = xrinput.Start(context.Background(), memory.NewHost(), discard,
		xrinput.WithLogger(logger),
		xrinput.WithThresholds(cfg.Thresholds),
		xrinput.WithDisabledProfiles(cfg.DisabledProfiles...),
		xrinput.WithMouseMovement(cfg.SendMovementEvents),
	)
	return err
}
