package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FAQ categories surfaced by the public site filter.
var faqCategories = []interface{}{"General", "Pricing", "Support", "Technical"}

// FAQInput is the candidate FAQ entry.
type FAQInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

func (f FAQInput) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Question, validation.Required, validation.Length(10, 300)),
		validation.Field(&f.Answer, validation.Required, validation.Length(10, 0)),
		validation.Field(&f.Category, validation.In(faqCategories...)),
		validation.Field(&f.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
	)
}

// Values projects the validated input into provider values.
func (f FAQInput) Values() map[string]any {
	values := map[string]any{
		"question": f.Question,
		"answer":   f.Answer,
		"status":   f.Status,
	}
	if f.Category != "" {
		values["category"] = f.Category
	}
	return values
}
