package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PopupInput is the candidate promotional pop-up. Dates use the form's
// YYYY-MM-DD convention; the ordering rule only fires when both are present.
type PopupInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	LinkURL     string      `json:"link_url"`
	Status      string      `json:"status"`
	Media       *FileUpload `json:"media"`
	MediaPath   string      `json:"media_path"`
}

func (p PopupInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(3, 150)),
		validation.Field(&p.Description, validation.Length(0, 500)),
		validation.Field(&p.StartDate, validation.Date(dateLayout)),
		validation.Field(&p.EndDate, validation.Date(dateLayout), validation.By(dateNotBefore(p.StartDate))),
		validation.Field(&p.LinkURL, is.URL),
		validation.Field(&p.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
		validation.Field(&p.Media,
			validation.By(fileType(popupMediaTypes...)),
			validation.By(fileMaxSize(10*MB)),
		),
	)
}

// Values projects the validated input into provider values.
func (p PopupInput) Values() map[string]any {
	values := map[string]any{
		"title":  p.Title,
		"status": p.Status,
	}
	if p.Description != "" {
		values["description"] = p.Description
	}
	if p.StartDate != "" {
		values["start_date"] = p.StartDate
	}
	if p.EndDate != "" {
		values["end_date"] = p.EndDate
	}
	if p.LinkURL != "" {
		values["link_url"] = p.LinkURL
	}
	if p.Media != nil {
		values["media"] = p.Media
	}
	return values
}
