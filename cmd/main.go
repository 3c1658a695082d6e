package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukydev/fleetpulse/internal/config"
	"github.com/ukydev/fleetpulse/internal/fleet"
	"github.com/ukydev/fleetpulse/internal/handlers"
	"github.com/ukydev/fleetpulse/internal/insight"
	"github.com/ukydev/fleetpulse/internal/models"
	"github.com/ukydev/fleetpulse/internal/session"
	"github.com/ukydev/fleetpulse/internal/store"
	"golang.org/x/sync/errgroup"
)

type app struct {
	cfg *config.Config
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fleetpulse",
		Short: "FleetPulse - fleet monitoring dashboard",
		Long: `FleetPulse serves a fleet monitoring dashboard over a fixed set of vehicles,
drivers and alerts, with optional AI-generated fleet insights.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.Load()
			a.cfg.ConfigureLogger(log.StandardLogger())
		},
	}

	rootCmd.AddCommand(a.serveCmd())
	rootCmd.AddCommand(a.insightCmd())
	rootCmd.AddCommand(a.vehiclesCmd())
	return rootCmd
}

// serveCmd runs the dashboard server until interrupted
func (a *app) serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port > 0 {
				a.cfg.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, a.cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Server port (overrides PORT)")
	return cmd
}

// insightCmd prints one fleet insight
func (a *app) insightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insight",
		Short: "Generate a fleet insight for the current vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			requester := newRequester(cmd.Context(), a.cfg)
			text := requester.GenerateInsight(cmd.Context(), store.Default().Vehicles())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

// vehiclesCmd lists the vehicles, optionally filtered by status
func (a *app) vehiclesCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "vehicles",
		Short: "List fleet vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != fleet.All && !models.VehicleStatus(status).IsValid() {
				return fmt.Errorf("unknown status %q (want all, active, maintenance, idle or charging)", status)
			}
			vehicles := fleet.FilterByStatus(store.Default().Vehicles(), status)
			return printVehicles(cmd.OutOrStdout(), vehicles)
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", fleet.All, "Filter by status (all, active, maintenance, idle, charging)")
	return cmd
}

func printVehicles(w io.Writer, vehicles []models.Vehicle) error {
	for _, v := range vehicles {
		if _, err := fmt.Fprintf(w, "%-4s %-20s %-18s %-12s %3d%%  %s\n",
			v.ID, v.Name, v.Model, v.Status, v.BatteryLevel, v.Location.Address); err != nil {
			return err
		}
	}
	return nil
}

// newRequester builds the insight requester. A Gemini client that cannot be
// created leaves the requester configured but without a generator.
func newRequester(ctx context.Context, cfg *config.Config) *insight.Requester {
	logger := log.StandardLogger()
	if cfg.GeminiAPIKey == "" {
		log.Warn("No Gemini API key configured; insights are disabled")
		return insight.NewRequester("", nil, logger)
	}

	gen, err := insight.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.InsightModel)
	if err != nil {
		log.WithError(err).Error("Failed to initialize insight generator")
		return insight.NewRequester(cfg.GeminiAPIKey, nil, logger)
	}
	log.WithField("model", gen.Model()).Info("Insight generator ready")
	return insight.NewRequester(cfg.GeminiAPIKey, gen, logger)
}

func runServer(ctx context.Context, cfg *config.Config) error {
	sessions, err := session.NewService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to create session service: %w", err)
	}

	router := handlers.NewRouter(handlers.Options{
		Store:             store.Default(),
		Sessions:          sessions,
		Insights:          newRequester(ctx, cfg),
		Logger:            log.StandardLogger(),
		InsightRateLimit:  cfg.InsightRateLimit,
		InsightRateWindow: cfg.InsightRateWindow,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("Shutting down HTTP server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
