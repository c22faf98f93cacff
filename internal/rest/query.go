package rest

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// BuildListQuery converts the generic list parameters into the backend's
// simple-REST query convention: a 1-based page/perPage pair becomes the
// _start/_end offset window, a single sort request becomes _sort/_order, and
// filters travel as plain field parameters. Nothing is filtered locally.
func BuildListQuery(params interfaces.ListParams) url.Values {
	query := url.Values{}

	page := params.Pagination.Page
	if page < 1 {
		page = 1
	}
	perPage := params.Pagination.PerPage
	if perPage < 1 {
		perPage = 10
	}
	start := (page - 1) * perPage
	query.Set("_start", strconv.Itoa(start))
	query.Set("_end", strconv.Itoa(start+perPage))

	if field := strings.TrimSpace(params.Sort.Field); field != "" {
		order := strings.ToUpper(strings.TrimSpace(params.Sort.Order))
		if order != interfaces.SortDescending {
			order = interfaces.SortAscending
		}
		query.Set("_sort", field)
		query.Set("_order", order)
	}

	for _, filter := range params.Filters {
		field := strings.TrimSpace(filter.Field)
		if field == "" || filter.Value == "" {
			continue
		}
		switch filter.Operator {
		case interfaces.FilterOperatorContains:
			query.Set(field+"_like", filter.Value)
		default:
			// Equality is the backend's default match mode.
			query.Set(field, filter.Value)
		}
	}

	return query
}
