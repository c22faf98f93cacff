package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewFAQ builds the FAQ provider. FAQs carry no files, so payloads are plain
// JSON restricted to the field table, with status defaulting backend-side to
// Draft when the form omits it.
func NewFAQ(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "faqs",
		PluralKey:   "faqs",
		SingularKey: "faq",
		IDField:     "faq_id",
		Encoding:    EncodingJSON,
		Fields: []rest.FieldSpec{
			{Name: "question"},
			{Name: "answer"},
			{Name: "category"},
			{Name: "status", Default: "Draft"},
		},
	}, client, logger)
}
