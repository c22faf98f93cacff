package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// settingFieldRemap translates the client-side settings convention onto the
// backend's. The misspelled maintenace_mode is the client convention the
// forms actually use; the backend spells it correctly. The remap is
// symmetric: outbound on create/update, inverted on every read.
var settingFieldRemap = map[string]string{
	"facebook_url":    "facebook_link",
	"instagram_url":   "instagram_link",
	"twitter_url":     "twitter_link",
	"linkedin_url":    "linkedin_link",
	"youtube_url":     "youtube_link",
	"maintenace_mode": "maintenance_mode",
}

// NewSetting builds the site settings provider. Settings are a singleton:
// every record operation targets the externally-configured record id, and
// caller-supplied ids are ignored.
func NewSetting(client *rest.Client, recordID string, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "settings",
		PluralKey:   "settings",
		SingularKey: "setting",
		IDField:     "setting_id",
		Encoding:    EncodingJSON,
		SingletonID: recordID,
		Fields: []rest.FieldSpec{
			{Name: "site_name"},
			{Name: "tagline"},
			{Name: "contact_email"},
			{Name: "contact_phone"},
			{Name: "address"},
			{Name: "facebook_url", Key: "facebook_link"},
			{Name: "instagram_url", Key: "instagram_link"},
			{Name: "twitter_url", Key: "twitter_link"},
			{Name: "linkedin_url", Key: "linkedin_link"},
			{Name: "youtube_url", Key: "youtube_link"},
			{Name: "maintenace_mode", Key: "maintenance_mode", Default: false},
		},
		Normalize: normalizeSetting,
	}, client, logger)
}

// normalizeSetting folds backend keys back into the client convention so
// read and write paths stay symmetric.
func normalizeSetting(record interfaces.Record) interfaces.Record {
	out := cloneRecord(record)
	for client, backend := range settingFieldRemap {
		if value, ok := out[backend]; ok {
			out[client] = value
			delete(out, backend)
		}
	}
	return out
}
