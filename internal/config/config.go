package config

import (
	"fmt"
	"time"
)

// Period names accepted in the periods list.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

type Config struct {
	ExporterPort    int           `mapstructure:"exporter_port" validate:"required,min=1,max=65535"`
	PollingInterval time.Duration `mapstructure:"polling_interval" validate:"required,min=1s"`
	Timezone        string        `mapstructure:"timezone" validate:"required"`
	Periods         []string      `mapstructure:"periods" validate:"required,min=1,dive,oneof=day week month year"`
}

// Location resolves the configured timezone once, at startup. Every clock
// reading is converted into this location before boundaries are computed,
// so reference and derived instants share a single fixed zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("resolving timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
