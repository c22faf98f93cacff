package providers

import (
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewBlog builds the blog post provider. Blogs carry a cover image, so
// payloads travel as multipart form data with tags JSON-stringified under a
// single key. A slug is derived from the title when the form did not supply
// one.
func NewBlog(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "blogs",
		PluralKey:   "blogs",
		SingularKey: "blog",
		IDField:     "blog_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "title"},
			{Name: "slug"},
			{Name: "content"},
			{Name: "excerpt"},
			{Name: "status"},
			{Name: "author"},
			{Name: "tags", Kind: rest.KindJSON},
			{Name: "cover_image", Kind: rest.KindFile},
		},
		Prepare: withDerivedSlug,
	}, client, logger)
}

// withDerivedSlug fills the slug from the title when absent. Mirrors the
// create form behaviour so API-driven hosts get the same records.
func withDerivedSlug(values map[string]any) map[string]any {
	if existing, ok := values["slug"].(string); ok && strings.TrimSpace(existing) != "" {
		return values
	}
	title, ok := values["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return values
	}
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return values
	}
	out := cloneValues(values)
	out["slug"] = normalized
	return out
}
