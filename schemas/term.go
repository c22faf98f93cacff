package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TermInput is a candidate legal or policy document. The body is stored as
// rendered HTML so the minimum length is generous.
type TermInput struct {
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Content      string `json:"content"`
	Status       string `json:"status"`
	ShowInFooter bool   `json:"show_in_footer"`
}

func (t TermInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required, validation.Length(3, 150)),
		validation.Field(&t.Content, validation.Required, validation.Length(20, 0)),
		validation.Field(&t.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
	)
}

// Values projects the validated input into provider values.
func (t TermInput) Values() map[string]any {
	values := map[string]any{
		"title":          t.Title,
		"content":        t.Content,
		"status":         t.Status,
		"show_in_footer": t.ShowInFooter,
	}
	if t.Slug != "" {
		values["slug"] = t.Slug
	}
	return values
}
