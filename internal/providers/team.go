package providers

import (
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// NewTeam builds the team member provider. The member photo is the one file
// field that is required at create time; the schema enforces that before any
// call lands here.
func NewTeam(client *rest.Client, logger interfaces.Logger) *Provider {
	return New(Definition{
		Resource:    "team-members",
		PluralKey:   "team_members",
		SingularKey: "team_member",
		IDField:     "team_id",
		Encoding:    EncodingMultipart,
		Fields: []rest.FieldSpec{
			{Name: "name"},
			{Name: "role"},
			{Name: "bio"},
			{Name: "email"},
			{Name: "linkedin_url"},
			{Name: "image", Kind: rest.KindFile},
		},
	}, client, logger)
}
