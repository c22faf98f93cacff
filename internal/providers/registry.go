package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// Registry is the single dispatch point between resource names and their
// providers. The table is fixed at construction and never mutated at
// runtime; unknown resources fall through to the generic REST convention.
type Registry struct {
	client    *rest.Client
	logger    interfaces.Logger
	providers map[string]interfaces.DataProvider
}

// NewRegistry registers every custom provider. The settings record id comes
// from configuration since the backend treats settings as a singleton.
func NewRegistry(client *rest.Client, settingsRecordID string, logger interfaces.Logger) *Registry {
	registry := &Registry{
		client:    client,
		logger:    logger,
		providers: map[string]interfaces.DataProvider{},
	}

	registry.providers["blogs"] = NewBlog(client, logger)
	registry.providers["faqs"] = NewFAQ(client, logger)
	registry.providers["products"] = NewProduct(client, logger)
	registry.providers["team-members"] = NewTeam(client, logger)
	registry.providers["testimonials"] = NewTestimonial(client, logger)
	registry.providers["popups"] = NewPopup(client, logger)
	registry.providers["gallery"] = NewGallery(client, logger)
	registry.providers["terms"] = NewTerm(client, logger)
	registry.providers["settings"] = NewSetting(client, settingsRecordID, logger)
	registry.providers["subscribers"] = NewNewsletter(client, logger)
	registry.providers["contacts"] = NewContact(client, logger)
	registry.providers["users"] = NewUsers(client, logger)

	return registry
}

// Resolve returns the registered provider for a resource, or a generic
// simple-REST provider for resources without a custom adapter.
func (r *Registry) Resolve(resource string) interfaces.DataProvider {
	if provider, ok := r.providers[resource]; ok {
		return provider
	}
	return NewGeneric(r.client, resource, r.logger)
}

// Registered reports whether a custom provider exists for the resource.
func (r *Registry) Registered(resource string) bool {
	_, ok := r.providers[resource]
	return ok
}
