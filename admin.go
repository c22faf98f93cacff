// Package admindata is the data-access layer behind a CMS admin dashboard:
// per-resource REST providers, validation schemas, bearer-token auth and a
// session expiry watchdog, all wired from a single configuration value.
package admindata

import (
	"context"
	"io"

	"github.com/goliatone/go-admin-data/internal/auth"
	"github.com/goliatone/go-admin-data/internal/commands"
	contentcmd "github.com/goliatone/go-admin-data/internal/commands/content"
	newslettercmd "github.com/goliatone/go-admin-data/internal/commands/newsletter"
	"github.com/goliatone/go-admin-data/internal/di"
	"github.com/goliatone/go-admin-data/internal/providers"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// DataProvider exports the uniform CRUD contract for consumers of the module.
type DataProvider = interfaces.DataProvider

// Record exports the backend entity map.
type Record = interfaces.Record

// ListParams exports the list request shape.
type ListParams = interfaces.ListParams

// ListResult exports the normalized list response shape.
type ListResult = interfaces.ListResult

// Pagination exports the 1-based page request.
type Pagination = interfaces.Pagination

// Sort exports the sort request.
type Sort = interfaces.Sort

// Filter exports the backend-evaluated list filter.
type Filter = interfaces.Filter

// FileUpload exports the pending upload handle consumed by multipart providers.
type FileUpload = interfaces.FileUpload

// AuthProvider exports the session lifecycle contract.
type AuthProvider = interfaces.AuthProvider

// Identity exports the decoded operator identity.
type Identity = interfaces.Identity

// LoginResult exports the credential exchange outcome.
type LoginResult = interfaces.LoginResult

// TokenStore exports the shared token persistence contract.
type TokenStore = interfaces.TokenStore

// NewsletterProvider exports the subscriber provider with its export fetch.
type NewsletterProvider = *providers.Newsletter

// UsersProvider exports the read-only users provider.
type UsersProvider = *providers.Users

// Module is the top level admin data runtime façade.
type Module struct {
	container *di.Container

	publish    *contentcmd.PublishHandler
	unpublish  *contentcmd.UnpublishHandler
	exportSubs *newslettercmd.ExportHandler
}

// New constructs the module from configuration with optional DI overrides.
func New(ctx context.Context, cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	m := &Module{container: container}

	registry := container.Registry()
	commandLogger := commands.CommandLogger(container.LoggerProvider(), "content")
	m.publish = contentcmd.NewPublishHandler(registry, commandLogger)
	m.unpublish = contentcmd.NewUnpublishHandler(registry, commandLogger)

	newsletter, _ := registry.Resolve("subscribers").(*providers.Newsletter)
	if newsletter != nil {
		exportLogger := commands.CommandLogger(container.LoggerProvider(), "newsletter")
		m.exportSubs = newslettercmd.NewExportHandler(newsletter, exportLogger)
	}

	return m, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Resource returns the provider for any resource key, falling back to the
// generic REST convention for resources without a custom adapter.
func (m *Module) Resource(name string) DataProvider {
	return m.container.Registry().Resolve(name)
}

// Blogs returns the blog post provider.
func (m *Module) Blogs() DataProvider { return m.Resource("blogs") }

// FAQs returns the FAQ provider.
func (m *Module) FAQs() DataProvider { return m.Resource("faqs") }

// Products returns the product provider.
func (m *Module) Products() DataProvider { return m.Resource("products") }

// Team returns the team member provider.
func (m *Module) Team() DataProvider { return m.Resource("team-members") }

// Testimonials returns the testimonial provider.
func (m *Module) Testimonials() DataProvider { return m.Resource("testimonials") }

// Popups returns the promotional pop-up provider.
func (m *Module) Popups() DataProvider { return m.Resource("popups") }

// Gallery returns the gallery item provider.
func (m *Module) Gallery() DataProvider { return m.Resource("gallery") }

// Terms returns the legal document provider.
func (m *Module) Terms() DataProvider { return m.Resource("terms") }

// Settings returns the singleton site settings provider.
func (m *Module) Settings() DataProvider { return m.Resource("settings") }

// Contacts returns the read-only contact submission provider.
func (m *Module) Contacts() DataProvider { return m.Resource("contacts") }

// Newsletter returns the subscriber provider including the export fetch.
func (m *Module) Newsletter() NewsletterProvider {
	provider, _ := m.container.Registry().Resolve("subscribers").(*providers.Newsletter)
	return provider
}

// Users returns the read-only users provider.
func (m *Module) Users() UsersProvider {
	provider, _ := m.container.Registry().Resolve("users").(*providers.Users)
	return provider
}

// Auth returns the session lifecycle provider.
func (m *Module) Auth() AuthProvider {
	return m.container.Auth()
}

// TokenStore returns the shared token store.
func (m *Module) TokenStore() TokenStore {
	return m.container.TokenStore()
}

// StartWatchdog begins token expiry polling when the watchdog is enabled.
func (m *Module) StartWatchdog(ctx context.Context) {
	if watchdog := m.container.Watchdog(); watchdog != nil {
		watchdog.Start(ctx)
	}
}

// StopWatchdog halts token expiry polling.
func (m *Module) StopWatchdog() {
	if watchdog := m.container.Watchdog(); watchdog != nil {
		watchdog.Stop()
	}
}

// Publish transitions a record to the published status.
func (m *Module) Publish(ctx context.Context, resource, recordID string) error {
	return m.publish.Execute(ctx, contentcmd.PublishCommand{
		Resource: resource,
		RecordID: recordID,
	})
}

// Unpublish reverts a record to draft.
func (m *Module) Unpublish(ctx context.Context, resource, recordID string) error {
	return m.unpublish.Execute(ctx, contentcmd.UnpublishCommand{
		Resource: resource,
		RecordID: recordID,
	})
}

// ExportSubscribers writes every newsletter subscriber to w as CSV.
func (m *Module) ExportSubscribers(ctx context.Context, w io.Writer) error {
	return m.exportSubs.Execute(ctx, newslettercmd.ExportCommand{Writer: w})
}

// Close stops the watchdog and releases held resources.
func (m *Module) Close() error {
	return m.container.Close()
}

// Watchdog exports the expiry watchdog handle for hosts that drive it directly.
type Watchdog = *auth.Watchdog
