package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewGallery builds the gallery image provider. The client-side "image"
// field maps onto the backend's "image_url" form key.
func NewGallery(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "gallery",
		PluralKey:   "gallery",
		SingularKey: "gallery_image",
		IDField:     "gallery_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "title"},
			{Name: "caption"},
			{Name: "status"},
			{Name: "sort_order"},
			{Name: "image", Key: "image_url", Kind: rest.KindFile},
		},
	}, client, logger)
}
