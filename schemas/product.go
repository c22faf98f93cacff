package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProductInput is the candidate product entry.
type ProductInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Category    string      `json:"category"`
	Status      string      `json:"status"`
	Featured    bool        `json:"featured"`
	Tags        []string    `json:"tags"`
	Image       *FileUpload `json:"image"`
	ImagePath   string      `json:"image_path"`
}

func (p ProductInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(3, 150)),
		validation.Field(&p.Description, validation.Required, validation.Length(10, 0)),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
		validation.Field(&p.Tags,
			validation.Length(0, maxTags),
			validation.By(uniqueStrings),
			validation.Each(validation.Required, validation.Length(1, 50)),
		),
		validation.Field(&p.Image,
			validation.By(fileType(imageTypes...)),
			validation.By(fileMaxSize(2*MB)),
		),
	)
}

// Values projects the validated input into provider values.
func (p ProductInput) Values() map[string]any {
	values := map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"status":      p.Status,
		"featured":    p.Featured,
	}
	if p.Category != "" {
		values["category"] = p.Category
	}
	if len(p.Tags) > 0 {
		values["tags"] = p.Tags
	}
	if p.Image != nil {
		values["image"] = p.Image
	}
	return values
}
