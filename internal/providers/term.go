package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewTerm builds the terms-page provider. Terms carry no files, so payloads
// are plain JSON restricted to the field table. Like blogs, a slug is
// derived from the title when absent.
func NewTerm(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "terms",
		PluralKey:   "terms",
		SingularKey: "term",
		IDField:     "term_id",
		Encoding:    EncodingJSON,
		Fields: []rest.FieldSpec{
			{Name: "title"},
			{Name: "slug"},
			{Name: "content"},
			{Name: "author"},
			{Name: "status", Default: "Draft"},
			{Name: "show_in_footer", Default: false},
		},
		Prepare: withDerivedSlug,
	}, client, logger)
}
