package utils

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"gridcal/src-core/grid"
)

type Config struct {
	location *time.Location

	slotInterval time.Duration
	startTime    time.Duration
	span         time.Duration
	minColumns   int
	timeFormat   string

	dbPath      string
	metricsPort string
}

func NewConfig() *Config {
	return &Config{
		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			var loc *time.Location
			var err error
			switch timezoneStr {
			case "":
				slog.Warn("TIMEZONE is not set, using local timezone", "timezone", time.Local)
				loc = time.Local
			case "UTC":
				loc = time.UTC
			default:
				loc, err = time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
			}
			slog.Debug("env", "TIMEZONE", timezoneStr)
			return loc
		}(),

		slotInterval: func() time.Duration {
			raw := os.Getenv("SLOT_INTERVAL")
			if raw == "" {
				return 15 * time.Minute
			}
			interval, err := time.ParseDuration(raw)
			if err != nil || interval <= 0 {
				slog.Error("invalid SLOT_INTERVAL", "value", raw, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "SLOT_INTERVAL", interval)
			return interval
		}(),
		startTime: func() time.Duration {
			raw := os.Getenv("SLOT_START_TIME")
			if raw == "" {
				raw = "09:00"
			}
			startTime, err := ParseClock(raw)
			if err != nil {
				slog.Error("invalid SLOT_START_TIME", "value", raw, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "SLOT_START_TIME", raw)
			return startTime
		}(),
		span: func() time.Duration {
			raw := os.Getenv("SLOT_SPAN")
			if raw == "" {
				return 8 * time.Hour
			}
			span, err := time.ParseDuration(raw)
			if err != nil || span < 0 {
				slog.Error("invalid SLOT_SPAN", "value", raw, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "SLOT_SPAN", span)
			return span
		}(),
		minColumns: func() int {
			raw := os.Getenv("MIN_COLUMNS")
			if raw == "" {
				return 4
			}
			minColumns, err := strconv.Atoi(raw)
			if err != nil || minColumns < 0 {
				slog.Error("invalid MIN_COLUMNS", "value", raw, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "MIN_COLUMNS", minColumns)
			return minColumns
		}(),
		timeFormat: func() string {
			timeFormat := os.Getenv("TIME_FORMAT")
			if timeFormat == "" {
				timeFormat = "%I:%M %p"
			}
			slog.Debug("env", "TIME_FORMAT", timeFormat)
			return timeFormat
		}(),

		dbPath: func() string {
			dbPath := os.Getenv("DB_PATH")
			if dbPath == "" {
				dbPath = "./sqlite.db"
			}
			slog.Debug("env", "DB_PATH", dbPath)
			return dbPath
		}(),
		metricsPort: func() string {
			metricsPort := os.Getenv("METRICS_PORT")
			slog.Debug("env", "METRICS_PORT", metricsPort)
			return metricsPort
		}(),
	}
}

// Get TIMEZONE env, default to the local timezone
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get SLOT_INTERVAL env, default to 15m
func (c *Config) GetSlotInterval() time.Duration {
	return c.slotInterval
}

// Get SLOT_START_TIME env as an offset from midnight, default to 09:00
func (c *Config) GetStartTime() time.Duration {
	return c.startTime
}

// Get SLOT_SPAN env, default to 8h
func (c *Config) GetSpan() time.Duration {
	return c.span
}

// Get MIN_COLUMNS env, default to 4
func (c *Config) GetMinColumns() int {
	return c.minColumns
}

// Get TIME_FORMAT env (strftime-style), default to "%I:%M %p"
func (c *Config) GetTimeFormat() string {
	return c.timeFormat
}

// Get DB_PATH env, default to ./sqlite.db
func (c *Config) GetDBPath() string {
	return c.dbPath
}

// Get METRICS_PORT env; blank disables the metrics listener
func (c *Config) GetMetricsPort() string {
	return c.metricsPort
}

// GridConfig assembles the grid configuration from the env-backed
// values.
func (c *Config) GridConfig() grid.Config {
	return grid.Config{
		StartTime:    c.startTime,
		Span:         c.span,
		SlotInterval: c.slotInterval,
		MinColumns:   c.minColumns,
	}
}
