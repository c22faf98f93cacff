package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewProduct builds the product provider: multipart payloads with a product
// image and a JSON-stringified tag list.
func NewProduct(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "products",
		PluralKey:   "products",
		SingularKey: "product",
		IDField:     "product_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "name"},
			{Name: "description"},
			{Name: "price"},
			{Name: "category"},
			{Name: "status"},
			{Name: "featured"},
			{Name: "tags", Kind: rest.KindJSON},
			{Name: "image", Kind: rest.KindFile},
		},
	}, client, logger)
}
