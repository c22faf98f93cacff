package providers

import (
	"context"

	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// exportPageSize is deliberately oversized: export is a single fetch, not a
// paginated or parallel scan.
const exportPageSize = 10000

// Newsletter wraps the subscriber provider with the export fetch. Subscribers
// sign up on the public site; the admin can only list, export and delete.
type Newsletter struct {
	*Provider
}

// NewNewsletter builds the newsletter subscriber provider.
func NewNewsletter(client *rest.Client, logger interfaces.Logger) *Newsletter {
	provider := New(Definition{
		Resource:     "subscribers",
		PluralKey:    "subscribers",
		SingularKey:  "subscriber",
		IDField:      "subscriber_id",
		Encoding:     EncodingJSON,
		DisableWrite: true,
	}, client, logger)
	return &Newsletter{Provider: provider}
}

// FetchAll pulls every subscriber in one oversized page for export.
func (n *Newsletter) FetchAll(ctx context.Context) ([]interfaces.Record, error) {
	result, err := n.GetList(ctx, interfaces.ListParams{
		Pagination: interfaces.Pagination{Page: 1, PerPage: exportPageSize},
		Sort:       interfaces.Sort{Field: "createdAt", Order: interfaces.SortDescending},
	})
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
