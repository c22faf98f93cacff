package schemas

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SettingInput is the site-wide settings form. All fields are optional so a
// partial save never wipes untouched values; URLs are checked when present.
type SettingInput struct {
	SiteName     string `json:"site_name"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
	TwitterURL   string `json:"twitter_url"`
	LinkedinURL  string `json:"linkedin_url"`
	YoutubeURL   string `json:"youtube_url"`
	// The misspelled key is the established client convention; the provider
	// remaps it onto the backend's correctly spelled field.
	MaintenanceMode bool `json:"maintenace_mode"`
}

func (s SettingInput) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.SiteName, validation.Length(0, 150)),
		validation.Field(&s.Tagline, validation.Length(0, 300)),
		validation.Field(&s.ContactEmail, is.Email),
		validation.Field(&s.FacebookURL, is.URL),
		validation.Field(&s.InstagramURL, is.URL),
		validation.Field(&s.TwitterURL, is.URL),
		validation.Field(&s.LinkedinURL, is.URL),
		validation.Field(&s.YoutubeURL, is.URL),
	)
}

// Values projects the validated input into provider values. Empty strings
// are carried through so a cleared field clears the stored value too.
func (s SettingInput) Values() map[string]any {
	return map[string]any{
		"site_name":       s.SiteName,
		"tagline":         s.Tagline,
		"contact_email":   s.ContactEmail,
		"contact_phone":   s.ContactPhone,
		"address":         s.Address,
		"facebook_url":    s.FacebookURL,
		"instagram_url":   s.InstagramURL,
		"twitter_url":     s.TwitterURL,
		"linkedin_url":    s.LinkedinURL,
		"youtube_url":     s.YoutubeURL,
		"maintenace_mode": s.MaintenanceMode,
	}
}
