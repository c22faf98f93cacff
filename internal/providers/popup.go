package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewPopup builds the promotional pop-up provider. The client-side "media"
// field maps onto the backend's "image" form key regardless of whether the
// upload is an image or a short video.
func NewPopup(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "popups",
		PluralKey:   "popups",
		SingularKey: "popup",
		IDField:     "popup_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "title"},
			{Name: "description"},
			{Name: "start_date"},
			{Name: "end_date"},
			{Name: "link_url"},
			{Name: "status"},
			{Name: "media", Key: "image", Kind: rest.KindFile},
		},
	}, client, logger)
}
