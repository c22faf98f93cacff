package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewTestimonial builds the testimonial provider. The client-side "logo"
// field maps onto the backend's "company_logo" form key.
func NewTestimonial(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "testimonials",
		PluralKey:   "testimonials",
		SingularKey: "testimonial",
		IDField:     "testimonial_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "name"},
			{Name: "company"},
			{Name: "position"},
			{Name: "message"},
			{Name: "rating"},
			{Name: "status"},
			{Name: "logo", Key: "company_logo", Kind: rest.KindFile},
		},
	}, client, logger)
}
