package interfaces

import "context"

// Filter operators understood by the backend list endpoints.
const (
	FilterOperatorEquals   = "eq"
	FilterOperatorContains = "contains"
)

// Sort directions accepted by GetList.
const (
	SortAscending  = "ASC"
	SortDescending = "DESC"
)

// Record is a backend entity as returned by the REST API. Field names follow
// the backend convention after provider normalization.
type Record map[string]any

// ID extracts the record identifier under the given key, tolerating the
// generic "id" fallback used by some endpoints.
func (r Record) ID(key string) string {
	if r == nil {
		return ""
	}
	if v, ok := r[key].(string); ok && v != "" {
		return v
	}
	if v, ok := r["id"].(string); ok {
		return v
	}
	return ""
}

// Pagination captures a 1-based page request.
type Pagination struct {
	Page    int
	PerPage int
}

// Sort captures a single field/direction sort request.
type Sort struct {
	Field string
	Order string
}

// Filter captures a single backend-evaluated list filter. The data layer never
// filters locally; filters travel to the backend as query parameters.
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// ListParams aggregates pagination, sorting and filtering for GetList.
type ListParams struct {
	Pagination Pagination
	Sort       Sort
	Filters    []Filter
}

// ListResult is the normalized shape every list operation resolves to.
// Total falls back to len(Data) when the backend omits an explicit count,
// which under-reports on paginated responses; callers should treat that
// value as a lower bound.
type ListResult struct {
	Data  []Record
	Total int
}

// DataProvider is the uniform CRUD contract implemented by every resource
// provider and by the generic REST fallback.
type DataProvider interface {
	GetList(ctx context.Context, params ListParams) (ListResult, error)
	GetOne(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, values map[string]any) (Record, error)
	Update(ctx context.Context, id string, values map[string]any) (Record, error)
	DeleteOne(ctx context.Context, id string) (Record, error)
}
