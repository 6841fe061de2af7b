package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ydelafollye/calendar-range-exporter-go/internal/config"
	"github.com/ydelafollye/calendar-range-exporter-go/pkg/timeutil"
)

// BoundaryCollector exports the start and end of the calendar periods
// enclosing the current clock reading as epoch-millisecond gauges.
type BoundaryCollector struct {
	mu       sync.RWMutex
	starts   *prometheus.GaugeVec
	ends     *prometheus.GaugeVec
	periods  []string
	location *time.Location
	clock    timeutil.Clock
	logger   *slog.Logger

	// Internal metrics
	refreshes       prometheus.Counter
	refreshDuration prometheus.Histogram
}

func New(cfg *config.Config, location *time.Location, clock timeutil.Clock, logger *slog.Logger) *BoundaryCollector {
	return &BoundaryCollector{
		starts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "calendar_period_start_timestamp_milliseconds",
				Help: "Inclusive start of the calendar period enclosing the reference instant, as epoch milliseconds",
			},
			[]string{"period"},
		),
		ends: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "calendar_period_end_timestamp_milliseconds",
				Help: "Inclusive end of the calendar period enclosing the reference instant, as epoch milliseconds",
			},
			[]string{"period"},
		),
		periods:  cfg.Periods,
		location: location,
		clock:    clock,
		logger:   logger,
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calendar_exporter_refreshes_total",
			Help: "Total number of boundary refreshes",
		}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "calendar_exporter_refresh_duration_seconds",
			Help:    "Duration of boundary refreshes",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Implement prometheus.Describe
func (c *BoundaryCollector) Describe(ch chan<- *prometheus.Desc) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.starts.Describe(ch)
	c.ends.Describe(ch)
	c.refreshes.Describe(ch)
	c.refreshDuration.Describe(ch)
}

// Implement prometheus.Collector
func (c *BoundaryCollector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	c.starts.Collect(ch)
	c.ends.Collect(ch)
	c.refreshes.Collect(ch)
	c.refreshDuration.Collect(ch)
}

// Reference returns the current clock reading in the configured location.
// It is the instant the gauges describe after the next Refresh.
func (c *BoundaryCollector) Reference() time.Time {
	return c.clock.Now().In(c.location)
}

// Refresh recomputes all period boundaries from the clock and atomically
// replaces the gauge values (called by the poller). The computation is pure
// and local, so the only failure mode is an already-cancelled context.
func (c *BoundaryCollector) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := prometheus.NewTimer(c.refreshDuration)
	defer timer.ObserveDuration()

	ref := c.Reference()
	rs := timeutil.Boundaries(ref)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.starts.Reset()
	c.ends.Reset()
	for _, period := range c.periods {
		r, ok := rangeFor(rs, period)
		if !ok {
			// Unreachable after config validation; skip rather than export garbage.
			c.logger.Warn("unknown period in config", "period", period)
			continue
		}
		c.starts.WithLabelValues(period).Set(float64(r.Start.UnixMilli()))
		c.ends.WithLabelValues(period).Set(float64(r.End.UnixMilli()))
	}
	c.refreshes.Inc()

	c.logger.Debug("boundaries refreshed", "reference", ref)
	return nil
}

func rangeFor(rs timeutil.RangeSet, period string) (timeutil.Range, bool) {
	switch period {
	case config.PeriodDay:
		return rs.Day, true
	case config.PeriodWeek:
		return rs.Week, true
	case config.PeriodMonth:
		return rs.Month, true
	case config.PeriodYear:
		return rs.Year, true
	default:
		return timeutil.Range{}, false
	}
}
