package providers

import (
	"context"

	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// Users is the read-only reference provider backing author selection on blog
// and term forms. Author relationships are reference-by-id; the read path may
// return an expanded object, but writes always carry the bare identifier.
type Users struct {
	*Provider
}

// NewUsers builds the active-user reference provider.
func NewUsers(client *rest.Client, logger interfaces.Logger) *Users {
	provider := New(Definition{
		Resource:      "users",
		PluralKey:     "users",
		SingularKey:   "user",
		IDField:       "user_id",
		Encoding:      EncodingJSON,
		DisableWrite:  true,
		DisableDelete: true,
	}, client, logger)
	return &Users{Provider: provider}
}

// ListActive returns users eligible as content authors.
func (u *Users) ListActive(ctx context.Context) ([]interfaces.Record, error) {
	result, err := u.GetList(ctx, interfaces.ListParams{
		Pagination: interfaces.Pagination{Page: 1, PerPage: 100},
		Filters: []interfaces.Filter{
			{Field: "status", Operator: interfaces.FilterOperatorEquals, Value: "active"},
		},
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
