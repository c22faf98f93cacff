package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

const (
	rootModule     = "admin"
	restModule     = "admin.rest"
	providerModule = "admin.providers"
	authModule     = "admin.auth"
	watchdogModule = "admin.watchdog"
	sessionModule  = "admin.session"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RESTLogger returns the logger namespace reserved for the HTTP client.
func RESTLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, restModule)
}

// ProviderLogger returns the logger namespace reserved for resource providers.
func ProviderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, providerModule)
}

// AuthLogger returns the logger namespace reserved for the auth provider.
func AuthLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, authModule)
}

// WatchdogLogger returns the logger namespace reserved for the expiry watchdog.
func WatchdogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, watchdogModule)
}

// SessionLogger returns the logger namespace reserved for token stores.
func SessionLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sessionModule)
}

// WithResource enriches a logger with the resource/id pair every provider
// attaches before rethrowing transport errors. Empty values are ignored.
func WithResource(logger interfaces.Logger, resource, id string) interfaces.Logger {
	fields := map[string]any{}
	if resource != "" {
		fields["resource"] = resource
	}
	if id != "" {
		fields["record_id"] = id
	}
	return WithFields(logger, fields)
}

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
