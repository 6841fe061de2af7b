package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/ydelafollye/calendar-range-exporter-go/internal/collector"
)

type Poller struct {
	collector *collector.BoundaryCollector
	interval  time.Duration
	logger    *slog.Logger
}

func NewPoller(c *collector.BoundaryCollector, interval time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		collector: c,
		interval:  interval,
		logger:    logger,
	}
}

func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("computing initial period boundaries")
	if err := p.collector.Refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("poller shutting down")
			return ctx.Err()

		case <-ticker.C:
			p.logger.Info("refreshing period boundaries")
			if err := p.collector.Refresh(ctx); err != nil {
				return err
			}
		}
	}
}
