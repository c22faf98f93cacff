package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlogInput is the candidate blog post as the create/edit form submits it.
// CoverImage and CoverImagePath are mutually exclusive: the path is the
// persisted upload, the handle a pending replacement.
type BlogInput struct {
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	Content        string      `json:"content"`
	Excerpt        string      `json:"excerpt"`
	Status         string      `json:"status"`
	Author         string      `json:"author"`
	Tags           []string    `json:"tags"`
	CoverImage     *FileUpload `json:"cover_image"`
	CoverImagePath string      `json:"cover_image_path"`
}

// Validate reports every violated constraint keyed by field.
func (b BlogInput) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Title, validation.Required, validation.Length(5, 200)),
		validation.Field(&b.Content, validation.Required, validation.Length(20, 0)),
		validation.Field(&b.Excerpt, validation.Length(0, 300)),
		validation.Field(&b.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
		validation.Field(&b.Author, validation.Required),
		validation.Field(&b.Tags,
			validation.Length(0, maxTags),
			validation.By(uniqueStrings),
			validation.Each(validation.Required, validation.Length(1, 50)),
		),
		validation.Field(&b.CoverImage,
			validation.By(fileType(imageTypes...)),
			validation.By(fileMaxSize(2*MB)),
		),
	)
}

// Values projects the validated input into provider values. File fields are
// included only when a new upload is pending; a persisted path means "keep".
func (b BlogInput) Values() map[string]any {
	values := map[string]any{
		"title":   b.Title,
		"content": b.Content,
		"status":  b.Status,
		"author":  b.Author,
	}
	if b.Slug != "" {
		values["slug"] = b.Slug
	}
	if b.Excerpt != "" {
		values["excerpt"] = b.Excerpt
	}
	if len(b.Tags) > 0 {
		values["tags"] = b.Tags
	}
	if b.CoverImage != nil {
		values["cover_image"] = b.CoverImage
	}
	return values
}
