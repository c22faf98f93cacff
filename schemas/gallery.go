package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GalleryInput is the candidate gallery item.
type GalleryInput struct {
	Title     string      `json:"title"`
	Caption   string      `json:"caption"`
	Status    string      `json:"status"`
	SortOrder int         `json:"sort_order"`
	Image     *FileUpload `json:"image"`
	ImagePath string      `json:"image_path"`
}

func (g GalleryInput) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&g.Caption, validation.Length(0, 300)),
		validation.Field(&g.Status, validation.Required, validation.In(StatusDraft, StatusPublished)),
		validation.Field(&g.SortOrder, validation.Min(0)),
		validation.Field(&g.Image,
			validation.By(g.imagePresent),
			validation.By(fileType(imageTypes...)),
			validation.By(fileMaxSize(4*MB)),
		),
	)
}

func (g GalleryInput) imagePresent(interface{}) error {
	if g.Image == nil && g.ImagePath == "" {
		return errImageRequired
	}
	return nil
}

// Values projects the validated input into provider values.
func (g GalleryInput) Values() map[string]any {
	values := map[string]any{
		"title":      g.Title,
		"status":     g.Status,
		"sort_order": g.SortOrder,
	}
	if g.Caption != "" {
		values["caption"] = g.Caption
	}
	if g.Image != nil {
		values["image"] = g.Image
	}
	return values
}
