package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var teamRoles = []interface{}{"Leadership", "Engineering", "Design", "Marketing", "Sales", "Operations"}

// TeamInput is the candidate team member. The photo is effectively required
// on create: either a pending upload or an already-persisted path must be
// present.
type TeamInput struct {
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	Bio         string      `json:"bio"`
	Email       string      `json:"email"`
	LinkedinURL string      `json:"linkedin_url"`
	Image       *FileUpload `json:"image"`
	ImagePath   string      `json:"image_path"`
}

func (t TeamInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&t.Role, validation.Required, validation.In(teamRoles...)),
		validation.Field(&t.Bio, validation.Length(0, 600)),
		validation.Field(&t.Email, is.Email),
		validation.Field(&t.LinkedinURL, is.URL),
		validation.Field(&t.Image,
			validation.By(t.imagePresent),
			validation.By(fileType(imageTypes...)),
			validation.By(fileMaxSize(4*MB)),
		),
	)
}

func (t TeamInput) imagePresent(interface{}) error {
	if t.Image == nil && t.ImagePath == "" {
		return errImageRequired
	}
	return nil
}

// Values projects the validated input into provider values.
func (t TeamInput) Values() map[string]any {
	values := map[string]any{
		"name": t.Name,
		"role": t.Role,
	}
	if t.Bio != "" {
		values["bio"] = t.Bio
	}
	if t.Email != "" {
		values["email"] = t.Email
	}
	if t.LinkedinURL != "" {
		values["linkedin_url"] = t.LinkedinURL
	}
	if t.Image != nil {
		values["image"] = t.Image
	}
	return values
}
