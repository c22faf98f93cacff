package runtimeconfig

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/joho/godotenv"
)

// ErrBaseURLRequired indicates the backend base URL was not configured.
var ErrBaseURLRequired = errors.New("admin config: backend base URL is required")

// ErrBaseURLInvalid indicates the backend base URL could not be parsed.
var ErrBaseURLInvalid = errors.New("admin config: backend base URL is invalid")

// ErrSettingsRecordIDRequired guards the settings singleton identifier.
var ErrSettingsRecordIDRequired = errors.New("admin config: settings record id is required")

// ErrWatchdogIntervalInvalid rejects non-positive watchdog intervals.
var ErrWatchdogIntervalInvalid = errors.New("admin config: watchdog interval must be positive")

// ErrSessionProviderUnknown rejects unsupported token store providers.
var ErrSessionProviderUnknown = errors.New("admin config: session provider is invalid")

// ErrSessionPathRequired guards the sqlite session store path.
var ErrSessionPathRequired = errors.New("admin config: session path is required for the sqlite provider")

var ErrLoggingProviderUnknown = errors.New("admin config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("admin config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("admin config: logging format is invalid")

// Session store providers accepted by SessionConfig.Provider.
const (
	SessionProviderMemory = "memory"
	SessionProviderSQLite = "sqlite"
)

// Config aggregates backend coordinates and adapter bindings for the admin
// data layer. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	BaseURL   string
	APIPrefix string
	Settings  SettingsConfig
	Watchdog  WatchdogConfig
	Session   SessionConfig
	Logging   LoggingConfig
	HTTP      HTTPConfig

	// Routes overrides the generated endpoint table. Leave nil to derive
	// routes from BaseURL and APIPrefix.
	Routes *urlkit.Config
}

// SettingsConfig captures the externally-assigned singleton identifier used
// by the site settings resource.
type SettingsConfig struct {
	RecordID string
}

// WatchdogConfig controls the token expiry watchdog.
type WatchdogConfig struct {
	Enabled  bool
	Interval time.Duration
}

// SessionConfig selects the durable token store backing the session.
type SessionConfig struct {
	Provider string
	Path     string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// HTTPConfig captures transport-level tunables.
type HTTPConfig struct {
	Timeout time.Duration
}

// DefaultConfig returns the baseline configuration: API under /api/v1, a 60s
// watchdog tick, an in-memory session and JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		APIPrefix: "/api/v1",
		Watchdog: WatchdogConfig{
			Enabled:  true,
			Interval: 60 * time.Second,
		},
		Session: SessionConfig{
			Provider: SessionProviderMemory,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// Load builds a Config from the environment, reading an optional .env file
// first. Missing variables fall back to DefaultConfig values.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	cfg.BaseURL = getEnv("ADMIN_API_BASE_URL", cfg.BaseURL)
	cfg.APIPrefix = getEnv("ADMIN_API_PREFIX", cfg.APIPrefix)
	cfg.Settings.RecordID = getEnv("ADMIN_SETTINGS_RECORD_ID", cfg.Settings.RecordID)
	cfg.Session.Provider = getEnv("ADMIN_SESSION_PROVIDER", cfg.Session.Provider)
	cfg.Session.Path = getEnv("ADMIN_SESSION_PATH", cfg.Session.Path)
	cfg.Logging.Level = getEnv("ADMIN_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("ADMIN_LOG_FORMAT", cfg.Logging.Format)

	if raw := os.Getenv("ADMIN_WATCHDOG_INTERVAL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, ErrWatchdogIntervalInvalid
		}
		cfg.Watchdog.Interval = time.Duration(seconds) * time.Second
	}

	return cfg, cfg.Validate()
}

// Validate reports the first configuration inconsistency found.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return ErrBaseURLRequired
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ErrBaseURLInvalid
	}

	if strings.TrimSpace(cfg.Settings.RecordID) == "" {
		return ErrSettingsRecordIDRequired
	}

	if cfg.Watchdog.Enabled && cfg.Watchdog.Interval <= 0 {
		return ErrWatchdogIntervalInvalid
	}

	switch cfg.Session.Provider {
	case SessionProviderMemory:
	case SessionProviderSQLite:
		if strings.TrimSpace(cfg.Session.Path) == "" {
			return ErrSessionPathRequired
		}
	default:
		return ErrSessionProviderUnknown
	}

	if err := cfg.Logging.validate(); err != nil {
		return err
	}
	return nil
}

func (lc LoggingConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(lc.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(lc.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(lc.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

// RouteConfig returns the endpoint table for the configured backend. An
// explicit Routes override wins; otherwise collection and record routes are
// derived from BaseURL and APIPrefix.
func (cfg Config) RouteConfig() *urlkit.Config {
	if cfg.Routes != nil {
		return cfg.Routes
	}
	prefix := strings.TrimSuffix(cfg.APIPrefix, "/")
	return &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "api",
				BaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
				Paths: map[string]string{
					"collection": prefix + "/:resource",
					"record":     prefix + "/:resource/:id",
					"login":      prefix + "/auth/login",
				},
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
