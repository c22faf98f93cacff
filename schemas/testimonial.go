package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TestimonialInput is the candidate testimonial. Testimonials use the
// moderation variant of the status lifecycle alongside publication.
type TestimonialInput struct {
	Name     string      `json:"name"`
	Company  string      `json:"company"`
	Position string      `json:"position"`
	Message  string      `json:"message"`
	Rating   int         `json:"rating"`
	Status   string      `json:"status"`
	Logo     *FileUpload `json:"logo"`
	LogoPath string      `json:"logo_path"`
}

func (t TestimonialInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&t.Message, validation.Required, validation.Length(10, 1000)),
		validation.Field(&t.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&t.Status, validation.Required,
			validation.In(StatusDraft, StatusPublished, StatusPending, StatusApproved)),
		validation.Field(&t.Logo,
			validation.By(fileType(imageTypes...)),
			validation.By(fileMaxSize(2*MB)),
		),
	)
}

// Values projects the validated input into provider values.
func (t TestimonialInput) Values() map[string]any {
	values := map[string]any{
		"name":    t.Name,
		"message": t.Message,
		"rating":  t.Rating,
		"status":  t.Status,
	}
	if t.Company != "" {
		values["company"] = t.Company
	}
	if t.Position != "" {
		values["position"] = t.Position
	}
	if t.Logo != nil {
		values["logo"] = t.Logo
	}
	return values
}
