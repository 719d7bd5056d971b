package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/xrinput"
	"github.com/aretw0/xrinput/internal/presentation/tui"
	"github.com/aretw0/xrinput/internal/trace"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/adapters/redis"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/ports"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [trace]",
	Short: "Replay a recorded input trace through the dispatcher",
	Long: `Reads a YAML or JSON trace of action events, mouse moves and session changes,
feeds it to a fresh session on an in-memory runtime and prints each disposition
together with the events delivered to the consumer.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReplay(cmd, args[0]); err != nil {
			fmt.Printf("Replay failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().String("redis", "", "Journal delivered events to this Redis address (overrides redis.addr)")
	replayCmd.Flags().Bool("mouse", false, "Enable mouse passthrough regardless of send_movement_events")
}

func runReplay(cmd *cobra.Command, path string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	steps, err := trace.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := ports.ConsumerFunc(func(phase domain.Phase, data domain.EventData) {
		if data.Source == domain.SourceMouseMove {
			fmt.Fprintf(out, "    -> %s mouse %d,%d\n", phase, data.X, data.Y)
			return
		}
		fmt.Fprintf(out, "    -> %s %s (%s) %.2f\n", phase, data.Action, data.Hand, data.Value)
	})

	consumers := []ports.Consumer{printer}
	var journal *redis.Journal
	addr, _ := cmd.Flags().GetString("redis")
	if addr == "" {
		addr = cfg.Redis.Addr
	}
	if addr != "" {
		journal = redis.New(addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithStream(cfg.Redis.Stream),
			redis.WithMaxLen(cfg.Redis.MaxLen),
			redis.WithLogger(logger),
		)
		defer journal.Close()
		consumers = append(consumers, journal)
	}

	mouse, _ := cmd.Flags().GetBool("mouse")
	host := memory.NewHost()
	sess, err := xrinput.Start(context.Background(), host, ports.Tee(consumers...),
		xrinput.WithLogger(logger),
		xrinput.WithThresholds(cfg.Thresholds),
		xrinput.WithDisabledProfiles(cfg.DisabledProfiles...),
		xrinput.WithMouseMovement(cfg.SendMovementEvents || mouse),
	)
	if err != nil {
		return err
	}

	// One step at a time so each disposition prints under the events it produced.
	for i, step := range steps {
		fmt.Fprintf(out, "%3d  %s\n", i+1, tui.DescribeStep(step))
		for _, o := range trace.Replay([]trace.Step{step}, sess, host.SetRunning) {
			if o.Disposition != "" {
				fmt.Fprintf(out, "     %s\n", tui.Status(string(o.Disposition)))
			}
		}
	}

	if journal != nil {
		n, err := journal.Len(context.Background())
		if err != nil {
			return fmt.Errorf("failed to read journal length: %w", err)
		}
		fmt.Fprintf(out, "\njournal %s holds %d events\n", cfg.Redis.Stream, n)
	}
	return nil
}
