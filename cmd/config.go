package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"speedial/internal/adapters/out/gemini"
	"speedial/internal/core/application/notifications"
	"speedial/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"
)

var (
	ErrHTTPPortIsRequired       = errors.New("http port is required")
	ErrNotificationTTLIsInvalid = errors.New("notification ttl must be positive")
	ErrLogLevelIsInvalid        = errors.New("log level must be one of debug, info, warn, error")
)

// Config holds the process settings. Each key is read from .env, then the
// environment, then the command line, the last one found winning.
type Config struct {
	HTTPPort        string
	GeminiAPIKey    string
	GeminiModel     string
	TickSchedule    string
	TrafficSchedule string
	NotificationTTL time.Duration
	RandomSeed      uint64
	LogLevel        string
}

// DefaultConfig runs the simulator on port 8080 without text generation.
func DefaultConfig() Config {
	return Config{
		HTTPPort:        "8080",
		GeminiModel:     gemini.DefaultModel,
		TickSchedule:    jobs.DefaultTickSchedule,
		TrafficSchedule: jobs.DefaultTrafficSchedule,
		NotificationTTL: notifications.DefaultTTL,
		LogLevel:        "info",
	}
}

type setting struct {
	env   string
	flag  string
	usage string
	set   func(*Config, string) error
}

func settings() []setting {
	return []setting{
		{"HTTP_PORT", "http-port", "port the HTTP API listens on", func(c *Config, v string) error {
			c.HTTPPort = v
			return nil
		}},
		{"GEMINI_API_KEY", "gemini-api-key", "Gemini API key; text generation is disabled when empty", func(c *Config, v string) error {
			c.GeminiAPIKey = v
			return nil
		}},
		{"GEMINI_MODEL", "gemini-model", "Gemini model name", func(c *Config, v string) error {
			c.GeminiModel = v
			return nil
		}},
		{"TICK_SCHEDULE", "tick-schedule", "cron schedule (with seconds) of the courier movement tick", func(c *Config, v string) error {
			c.TickSchedule = v
			return nil
		}},
		{"TRAFFIC_SCHEDULE", "traffic-schedule", "cron schedule (with seconds) of the traffic refresh", func(c *Config, v string) error {
			c.TrafficSchedule = v
			return nil
		}},
		{"NOTIFICATION_TTL", "notification-ttl", "how long a notification stays listed", func(c *Config, v string) error {
			ttl, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("NOTIFICATION_TTL: %w", err)
			}
			c.NotificationTTL = ttl
			return nil
		}},
		{"RANDOM_SEED", "random-seed", "seed of the simulation random source; 0 seeds from the clock", func(c *Config, v string) error {
			seed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("RANDOM_SEED: %w", err)
			}
			c.RandomSeed = seed
			return nil
		}},
		{"LOG_LEVEL", "log-level", "debug, info, warn or error", func(c *Config, v string) error {
			c.LogLevel = strings.ToLower(v)
			return nil
		}},
	}
}

// RegisterFlags adds one flag per setting to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	defaults := DefaultConfig()
	values := map[string]string{
		"http-port":        defaults.HTTPPort,
		"gemini-model":     defaults.GeminiModel,
		"tick-schedule":    defaults.TickSchedule,
		"traffic-schedule": defaults.TrafficSchedule,
		"notification-ttl": defaults.NotificationTTL.String(),
		"random-seed":      "0",
		"log-level":        defaults.LogLevel,
	}
	for _, s := range settings() {
		flags.String(s.flag, values[s.flag], s.usage+" (env "+s.env+")")
	}
}

// LoadConfig reads envFile when it exists, then the environment, then the
// flags the user changed.
func LoadConfig(envFile string, flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := DefaultConfig()
	var errList []error
	for _, s := range settings() {
		if v, ok := os.LookupEnv(s.env); ok && v != "" {
			errList = append(errList, s.set(&cfg, v))
		}
		if flags != nil && flags.Changed(s.flag) {
			v, err := flags.GetString(s.flag)
			if err != nil {
				errList = append(errList, err)
				continue
			}
			errList = append(errList, s.set(&cfg, v))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errList []error
	if strings.TrimSpace(c.HTTPPort) == "" {
		errList = append(errList, ErrHTTPPortIsRequired)
	}
	if c.NotificationTTL <= 0 {
		errList = append(errList, ErrNotificationTTLIsInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// SlogLevel maps LogLevel onto slog.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrLogLevelIsInvalid, c.LogLevel)
	}
}

// EchoLogLevel maps LogLevel onto the gommon logger used by echo.
func (c Config) EchoLogLevel() log.Lvl {
	switch c.LogLevel {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

// Seed returns RandomSeed, or a clock based seed when it is zero.
func (c Config) Seed() uint64 {
	if c.RandomSeed != 0 {
		return c.RandomSeed
	}
	return uint64(time.Now().UnixNano()) //nolint:gosec // seeds a simulation, sign is irrelevant
}
