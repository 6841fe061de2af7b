package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ydelafollye/calendar-range-exporter-go/internal/collector"
	"github.com/ydelafollye/calendar-range-exporter-go/internal/config"
	"github.com/ydelafollye/calendar-range-exporter-go/internal/server"
	"github.com/ydelafollye/calendar-range-exporter-go/pkg/timeutil"
)

type Exporter struct {
	config    *config.Config
	collector *collector.BoundaryCollector
	server    *server.Server
	logger    *slog.Logger
}

func New(cfg *config.Config, logger *slog.Logger) (*Exporter, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	// One fixed zone for the whole process
	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("loading location: %w", err)
	}

	clock := timeutil.RealClock{}

	// Init collector
	coll := collector.New(cfg, location, clock, logger.With("component", "collector"))

	// Record collector into Prometheus
	if err := prometheus.Register(coll); err != nil {
		// Ignore error if already registered
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if !errors.As(err, &alreadyRegistered) {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	// Create HTTP server
	ranges := server.NewRangesHandler(clock, location, logger.With("component", "ranges"))
	srv := server.New(cfg.ExporterPort, ranges, logger.With("component", "server"))

	return &Exporter{
		config:    cfg,
		collector: coll,
		server:    srv,
		logger:    logger,
	}, nil
}

// Run HTTP server and Poller
func (e *Exporter) Run(ctx context.Context) error {
	e.logger.Info("starting exporter",
		"port", e.config.ExporterPort,
		"polling_interval", e.config.PollingInterval,
		"timezone", e.config.Timezone,
		"periods", e.config.Periods,
	)

	// Channel to capture goroutines error
	errCh := make(chan error, 2)

	// Start HTTP server
	go func() {
		if err := e.server.Start(); err != nil {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Start the poller
	poller := NewPoller(e.collector, e.config.PollingInterval, e.logger.With("component", "poller"))
	go func() {
		if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("poller error: %w", err)
		}
	}()

	// Wait for error or shutdown signal
	select {
	case err := <-errCh:
		e.logger.Error("component failed", "error", err)
		e.shutdown()
		return err

	case <-ctx.Done():
		e.logger.Info("shutdown signal received")
		e.shutdown()
		return nil
	}
}

// Shutdown all components
func (e *Exporter) shutdown() {
	e.logger.Info("shutting down exporter")

	// Shutdown timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop HTTP server
	if err := e.server.Shutdown(ctx); err != nil {
		e.logger.Error("server shutdown error", "error", err)
	}

	// Unregister from Prometheus
	prometheus.Unregister(e.collector)

	e.logger.Info("exporter stopped")
}

// Return the collector for testing
func (e *Exporter) Collector() *collector.BoundaryCollector {
	return e.collector
}

// Return exporter config
func (e *Exporter) Config() *config.Config {
	return e.config
}
