package rest

import (
	"fmt"

	urlkit "github.com/goliatone/go-urlkit"
)

const apiGroup = "api"

// Endpoints resolves backend URLs through a go-urlkit route manager. Routes
// are fixed at construction; resources travel as route parameters.
type Endpoints struct {
	manager *urlkit.RouteManager
}

// NewEndpoints wraps the provided route table. The table must expose an "api"
// group with "collection", "record" and "login" routes.
func NewEndpoints(cfg *urlkit.Config) *Endpoints {
	return &Endpoints{manager: urlkit.NewRouteManager(cfg)}
}

// Collection resolves the list/create URL for a resource.
func (e *Endpoints) Collection(resource string) (string, error) {
	builder, err := e.builder("collection")
	if err != nil {
		return "", err
	}
	return builder.WithParam("resource", resource).Build()
}

// Record resolves the get/update/delete URL for a single record.
func (e *Endpoints) Record(resource, id string) (string, error) {
	builder, err := e.builder("record")
	if err != nil {
		return "", err
	}
	return builder.WithParam("resource", resource).WithParam("id", id).Build()
}

// Login resolves the credential exchange URL.
func (e *Endpoints) Login() (string, error) {
	builder, err := e.builder("login")
	if err != nil {
		return "", err
	}
	return builder.Build()
}

func (e *Endpoints) builder(route string) (*urlkit.Builder, error) {
	group, err := lookupGroup(e.manager, apiGroup)
	if err != nil {
		return nil, err
	}
	return safeBuilder(group, route)
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("%w: group is nil", ErrEndpointUnresolved)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: route %q: %v", ErrEndpointUnresolved, route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("%w: route manager not configured", ErrEndpointUnresolved)
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: group %q not found", ErrEndpointUnresolved, name)
		}
	}()
	group = manager.Group(name)
	return group, err
}
