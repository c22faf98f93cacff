package admindata

import "github.com/goliatone/go-admin-data/internal/runtimeconfig"

var (
	ErrBaseURLRequired          = runtimeconfig.ErrBaseURLRequired
	ErrBaseURLInvalid           = runtimeconfig.ErrBaseURLInvalid
	ErrSettingsRecordIDRequired = runtimeconfig.ErrSettingsRecordIDRequired
	ErrWatchdogIntervalInvalid  = runtimeconfig.ErrWatchdogIntervalInvalid
	ErrSessionProviderUnknown   = runtimeconfig.ErrSessionProviderUnknown
	ErrSessionPathRequired      = runtimeconfig.ErrSessionPathRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

// Session store providers accepted by SessionConfig.Provider.
const (
	SessionProviderMemory = runtimeconfig.SessionProviderMemory
	SessionProviderSQLite = runtimeconfig.SessionProviderSQLite
)

type (
	Config         = runtimeconfig.Config
	SettingsConfig = runtimeconfig.SettingsConfig
	WatchdogConfig = runtimeconfig.WatchdogConfig
	SessionConfig  = runtimeconfig.SessionConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
	HTTPConfig     = runtimeconfig.HTTPConfig
)

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig builds a Config from the environment, reading an optional .env
// file first.
func LoadConfig() (Config, error) {
	return runtimeconfig.Load()
}
