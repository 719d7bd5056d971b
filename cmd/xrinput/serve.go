package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/xrinput"
	"github.com/aretw0/xrinput/internal/presentation/tui"
	httpAdapter "github.com/aretw0/xrinput/pkg/adapters/http"
	"github.com/aretw0/xrinput/pkg/adapters/memory"
	"github.com/aretw0/xrinput/pkg/adapters/redis"
	"github.com/aretw0/xrinput/pkg/domain"
	"github.com/aretw0/xrinput/pkg/observability"
	"github.com/aretw0/xrinput/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP inspection and ingest server",
	Long: `Starts a session on an in-memory runtime and exposes it over HTTP: the catalog,
the registered bindings, an event ingest endpoint and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.HTTP.Addr = addr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(reg)

	consumers := []ports.Consumer{ports.ConsumerFunc(func(phase domain.Phase, data domain.EventData) {
		logger.Info("event", "phase", phase, "source", data.Source, "action", data.Action, "hand", data.Hand, "value", data.Value)
	})}
	if cfg.Redis.Addr != "" {
		journal := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithStream(cfg.Redis.Stream),
			redis.WithMaxLen(cfg.Redis.MaxLen),
			redis.WithLogger(logger),
		)
		defer journal.Close()
		consumers = append(consumers, journal)
	}

	sess, err := xrinput.Start(context.Background(), memory.NewHost(), ports.Tee(consumers...),
		xrinput.WithLogger(logger),
		xrinput.WithHooks(metrics.Hooks()),
		xrinput.WithThresholds(cfg.Thresholds),
		xrinput.WithDisabledProfiles(cfg.DisabledProfiles...),
		xrinput.WithMouseMovement(cfg.SendMovementEvents),
	)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpAdapter.NewHandler(sess, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		tui.PrintBanner(os.Stdout)
		fmt.Printf("Starting xrinput server on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
			if err := srv.Close(); err != nil {
				fmt.Printf("Error killing server: %v\n", err)
			}
		}
		fmt.Println("xrinput server stopped gracefully")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (overrides http.addr)")
}
