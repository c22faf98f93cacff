package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewGeneric builds the fallback provider for resources without a custom
// adapter: JSON payloads passed through untouched, records under the
// conventional "data" envelope (with the bare-array fallback), ids under
// "id".
func NewGeneric(client *rest.Client, resource string, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    resource,
		PluralKey:   "data",
		SingularKey: "data",
		IDField:     "id",
		Encoding:    EncodingJSON,
	}, client, logger)
}
