// Package di wires the data layer: configuration in, fully connected
// providers, auth and watchdog out.
package di

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goliatone/go-admin-data/internal/auth"
	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/internal/logging/gologger"
	"github.com/goliatone/go-admin-data/internal/providers"
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/internal/runtimeconfig"
	"github.com/goliatone/go-admin-data/internal/session"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// Container wires module dependencies from configuration. Bindings resolve
// lazily where construction can fail, eagerly where it cannot.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	store          interfaces.TokenStore
	onExpire       auth.ExpireFunc

	endpoints    *rest.Endpoints
	client       *rest.Client
	registry     *providers.Registry
	authProvider *auth.Provider
	watchdog     *auth.Watchdog
	sqliteStore  *session.SQLiteStore
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default logger provider binding.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTTPClient overrides the transport used by the REST client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Container) {
		c.httpClient = httpc
	}
}

// WithTokenStore overrides the session-selected token store.
func WithTokenStore(store interfaces.TokenStore) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithOnExpire registers the watchdog expiry callback.
func WithOnExpire(fn auth.ExpireFunc) Option {
	return func(c *Container) {
		c.onExpire = fn
	}
}

// NewContainer validates the configuration and wires every binding.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.store == nil {
		store, err := c.buildStore(ctx)
		if err != nil {
			return nil, err
		}
		c.store = store
	}

	c.endpoints = rest.NewEndpoints(cfg.RouteConfig())

	clientOpts := []rest.Option{
		rest.WithLogger(logging.RESTLogger(c.loggerProvider)),
		rest.WithTimeout(cfg.HTTP.Timeout),
	}
	if c.httpClient != nil {
		clientOpts = append(clientOpts, rest.WithHTTPClient(c.httpClient))
	}
	c.client = rest.NewClient(c.endpoints, c.store, clientOpts...)

	c.registry = providers.NewRegistry(c.client, cfg.Settings.RecordID, logging.ProviderLogger(c.loggerProvider))
	c.authProvider = auth.NewProvider(c.client, c.store, logging.AuthLogger(c.loggerProvider))

	if cfg.Watchdog.Enabled {
		watchdogOpts := []auth.WatchdogOption{
			auth.WithInterval(cfg.Watchdog.Interval),
			auth.WithWatchdogLogger(logging.WatchdogLogger(c.loggerProvider)),
		}
		if c.onExpire != nil {
			watchdogOpts = append(watchdogOpts, auth.WithOnExpire(c.onExpire))
		}
		c.watchdog = auth.NewWatchdog(c.store, watchdogOpts...)
	}

	return c, nil
}

// LoggerProvider exposes the resolved logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Client exposes the shared REST client.
func (c *Container) Client() *rest.Client {
	return c.client
}

// Endpoints exposes the endpoint resolver.
func (c *Container) Endpoints() *rest.Endpoints {
	return c.endpoints
}

// Registry exposes the provider registry.
func (c *Container) Registry() *providers.Registry {
	return c.registry
}

// Auth exposes the auth provider.
func (c *Container) Auth() *auth.Provider {
	return c.authProvider
}

// Watchdog exposes the token expiry watchdog, nil when disabled.
func (c *Container) Watchdog() *auth.Watchdog {
	return c.watchdog
}

// TokenStore exposes the resolved token store.
func (c *Container) TokenStore() interfaces.TokenStore {
	return c.store
}

// Close releases held resources: a running watchdog and the sqlite session
// database when one was opened.
func (c *Container) Close() error {
	if c.watchdog != nil {
		c.watchdog.Stop()
	}
	if c.sqliteStore != nil {
		return c.sqliteStore.Close()
	}
	return nil
}

func (c *Container) buildStore(ctx context.Context) (interfaces.TokenStore, error) {
	switch c.Config.Session.Provider {
	case runtimeconfig.SessionProviderSQLite:
		store, err := session.NewSQLiteStore(ctx, c.Config.Session.Path, logging.SessionLogger(c.loggerProvider))
		if err != nil {
			return nil, err
		}
		c.sqliteStore = store
		return store, nil
	case runtimeconfig.SessionProviderMemory, "":
		return session.NewMemoryStore(), nil
	default:
		return nil, runtimeconfig.ErrSessionProviderUnknown
	}
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.Provider {
	case "noop":
		return noopProvider{}, nil
	case "", "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("%w: %q", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
