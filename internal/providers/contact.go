package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewContact builds the contact-form submission provider. Submissions arrive
// from the public site; the admin can read and delete them, never write.
func NewContact(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:     "contacts",
		PluralKey:    "contacts",
		SingularKey:  "contact",
		IDField:      "contact_id",
		Encoding:     EncodingJSON,
		DisableWrite: true,
	}, client, logger)
}
