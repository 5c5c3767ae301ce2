package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/hitsquads/internal/config"
	"github.com/udisondev/hitsquads/internal/encounter"
	"github.com/udisondev/hitsquads/internal/faction"
	"github.com/udisondev/hitsquads/internal/metrics"
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/telemetry"
	"github.com/udisondev/hitsquads/internal/tick"
	"github.com/udisondev/hitsquads/internal/world"
)

const ConfigPath = "config/hitsquads.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("HITSQUADS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, cfgErr := config.LoadEncounter(cfgPath)

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
	tick.EnableDebugLogging(logLevel == slog.LevelDebug)

	sim := world.NewSim(cfg.World)

	// A broken or missing config never stops the process; the defaults are used.
	switch {
	case errors.Is(cfgErr, config.ErrConfigMissing):
		slog.Warn("config not found, using defaults", "path", cfgPath)
		sim.Notify("Config file not found, using default settings.")
	case cfgErr != nil:
		slog.Error("config load failed, using defaults", "path", cfgPath, "err", cfgErr)
		sim.Notify("Error loading config: " + cfgErr.Error())
	}

	slog.Info("hitsquads starting",
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.Loop.TickInterval,
		"metrics_addr", cfg.MetricsAddr,
		"telemetry_dir", cfg.TelemetryDir)

	var collector *metrics.Collector
	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		c, err := metrics.NewCollector(reg)
		if err != nil {
			return fmt.Errorf("registering metrics: %w", err)
		}
		collector = c
	}

	csv, err := telemetry.NewWriter(cfg.TelemetryDir)
	if err != nil {
		return fmt.Errorf("opening telemetry: %w", err)
	}
	defer func() {
		if err := csv.Close(); err != nil {
			slog.Error("closing telemetry", "err", err)
		}
	}()

	var session *encounter.Session
	loop := tick.NewManager(cfg.Loop, tick.Handlers{
		OnTick: func(now time.Time) {
			sim.Advance(cfg.Loop.TickInterval)
			onTick(session, csv, now)
		},
		OnTrigger: func(now time.Time) {
			if err := session.Toggle(now); err != nil {
				slog.Error("toggling encounter", "err", err)
			}
		},
	})

	session = encounter.NewSession(sim, faction.Default(), rng.New(cfg.Seed), loop, cfg.Session)
	session.SetMetrics(collector)

	// Quitting from stdin stops the loop; runCtx then takes the other goroutines down.
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancelRun()
		err := loop.Start(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		return readTriggers(gctx, loop)
	})

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux(collector),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			slog.Info("starting metrics server", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	fmt.Println("Press Enter to start or stop an encounter, q to quit.")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("encounter loop: %w", err)
	}

	// The loop has exited, so the session is no longer shared.
	if session.State() == model.EncounterActive {
		if err := session.Stop(time.Now()); err != nil {
			slog.Error("stopping encounter", "err", err)
		}
	}

	slog.Info("hitsquads stopped")
	return nil
}

// onTick advances the encounter and records the report.
func onTick(session *encounter.Session, csv *telemetry.Writer, now time.Time) {
	report, err := session.Tick(now)
	if err != nil {
		// Only invalid data reaches here; retrying every tick would repeat it.
		slog.Error("encounter tick failed, stopping encounter", "err", err)
		if err := session.Stop(now); err != nil {
			slog.Error("stopping encounter", "err", err)
		}
		return
	}
	if report.Tick == 0 {
		return
	}

	if err := csv.Write(session.ID().String(), report); err != nil {
		slog.Error("writing telemetry", "err", err)
	}
}

// readTriggers turns stdin lines into trigger events until ctx ends, q is
// entered, or stdin closes.
func readTriggers(ctx context.Context, loop *tick.Manager) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			slog.Warn("reading stdin", "err", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// Without stdin the encounter can still be driven by signals only.
				return nil
			}
			switch strings.TrimSpace(strings.ToLower(line)) {
			case "q", "quit", "exit":
				loop.Stop()
				return nil
			default:
				loop.Trigger()
			}
		}
	}
}

func metricsMux(c *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return mux
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
