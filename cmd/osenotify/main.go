package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/OfkoloBai/Osenotify/internal/alert"
	"github.com/OfkoloBai/Osenotify/internal/config"
	"github.com/OfkoloBai/Osenotify/internal/feed"
	"github.com/OfkoloBai/Osenotify/internal/logging"
	"github.com/OfkoloBai/Osenotify/internal/monitor"
	"github.com/OfkoloBai/Osenotify/internal/notify"
	"github.com/OfkoloBai/Osenotify/internal/ops"
	"github.com/OfkoloBai/Osenotify/internal/trigger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file (optional; QUAKE_* env vars apply on top)")
	flag.Parse()

	// Bootstrap logger for everything up to the file tee.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	closeLog, err := logging.Setup(cfg.Log.Dir)
	if err != nil {
		slog.Error("failed to set up logging", "err", err)
		os.Exit(1)
	}
	defer closeLog()

	slog.Info("osenotify starting",
		"jma_threshold", cfg.Thresholds.JMA,
		"cea_threshold", cfg.Thresholds.CEA,
		"cooldown", cfg.Cooldown,
		"monitoring_enabled", cfg.Monitoring.Enabled,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Trigger gate and threshold evaluator, shared by both feeds.
	gate := trigger.NewGate(cfg.Cooldown, cfg.Dedup.TTL, cfg.Dedup.MaxEntries)
	evaluator := trigger.NewEvaluator(trigger.Thresholds{
		JMA: alert.Intensity(cfg.Thresholds.JMA),
		CEA: cfg.Thresholds.CEA,
	})

	// Notification delivery: worker pool behind a bounded queue.
	pusher := notify.NewGotify(cfg.Push.URL, cfg.Push.Token(), cfg.Push.Timeout)
	dispatcher := notify.NewDispatcher(pusher, cfg.Push.MaxAttempts, cfg.Push.QueueSize, cfg.Push.Workers)
	go dispatcher.Run(ctx)

	pipeline := monitor.NewPipeline(evaluator, gate, dispatcher)

	connectors := []*feed.Connector{
		feed.NewConnector(alert.SourceJMA, cfg.Feeds.JMA, cfg.Feeds.ReconnectDelay, pipeline.Handle),
		feed.NewConnector(alert.SourceCEA, cfg.Feeds.CEA, cfg.Feeds.ReconnectDelay, pipeline.Handle),
	}

	retention := time.Duration(cfg.Log.RetentionDays) * 24 * time.Hour
	housekeep := func() { logging.Sweep(cfg.Log.Dir, retention) }

	sup := monitor.New(gate, connectors, housekeep, cfg.Log.SweepInterval)
	if !cfg.Monitoring.Enabled {
		sup.Pause()
	}

	if *configPath != "" {
		slog.Info("config: live reload applies monitoring.enabled only; other changes need a restart")
		go func() {
			err := config.Watch(ctx, *configPath, func(updated *config.Config) {
				if updated.Monitoring.Enabled {
					sup.Resume()
				} else {
					sup.Pause()
				}
			})
			if err != nil {
				slog.Error("config watcher stopped", "err", err)
			}
		}()
	}

	// Ops endpoint: health, metrics, synthetic test alerts.
	opsSrv := ops.New(cfg.Ops.Listen, pipeline)
	go func() {
		slog.Info("ops server listening", "addr", cfg.Ops.Listen)
		if err := opsSrv.Serve(); err != nil && err != http.ErrServerClosed {
			slog.Error("ops server stopped", "err", err)
		}
	}()

	sup.Run(ctx)

	slog.Info("osenotify shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	opsSrv.Shutdown(shutdownCtx) //nolint:errcheck
}
