package providers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-admin-data/internal/logging"
	"github.com/goliatone/go-admin-data/internal/rest"
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// ErrWriteUnsupported marks resources the admin can read and delete but never
// create or mutate (newsletter subscribers, contact submissions).
var ErrWriteUnsupported = errors.New("providers: resource does not accept writes")

// ErrDeleteUnsupported marks read-only reference resources (active users).
var ErrDeleteUnsupported = errors.New("providers: resource does not accept deletes")

const operationUnsupportedCode = "ADMIN_OPERATION_UNSUPPORTED"

// Encoding selects the create/update payload representation for a resource.
type Encoding int

const (
	// EncodingJSON sends a plain JSON object restricted to the field table.
	EncodingJSON Encoding = iota
	// EncodingMultipart sends multipart form data; required for any resource
	// carrying a binary file field.
	EncodingMultipart
)

// Definition is the declarative per-resource descriptor: endpoint segment,
// envelope keys, identifier field, payload encoding and the client→backend
// field table. It replaces hand-rolled builder logic per resource.
type Definition struct {
	Resource    string
	PluralKey   string
	SingularKey string
	IDField     string
	Encoding    Encoding
	Fields      []rest.FieldSpec

	// SingletonID pins every record operation to a fixed identifier
	// (site settings). The caller-supplied id is ignored.
	SingletonID string

	// Prepare adjusts outbound values before encoding (slug derivation,
	// settings key remap). It must not mutate the input map.
	Prepare func(values map[string]any) map[string]any

	// Normalize adjusts inbound records after envelope decoding (settings
	// key remap). It must not mutate the input record.
	Normalize func(record interfaces.Record) interfaces.Record

	DisableWrite  bool
	DisableDelete bool
}

// Provider implements the uniform CRUD contract for one resource definition.
// It owns no domain logic beyond translation: errors are logged with
// resource context and rethrown unchanged.
type Provider struct {
	def    Definition
	client *rest.Client
	logger interfaces.Logger
}

// New builds a provider from its definition.
func New(def Definition, client *rest.Client, logger interfaces.Logger) *Provider {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Provider{def: def, client: client, logger: logger}
}

// Definition exposes the descriptor, mainly for tests and the registry.
func (p *Provider) Definition() Definition {
	return p.def
}

// GetList fetches one page of records. All filtering and ordering is
// delegated to the backend via query parameters.
func (p *Provider) GetList(ctx context.Context, params interfaces.ListParams) (interfaces.ListResult, error) {
	endpoint, err := p.client.Endpoints().Collection(p.def.Resource)
	if err != nil {
		return interfaces.ListResult{}, err
	}

	payload, err := p.client.Do(ctx, http.MethodGet, endpoint, rest.BuildListQuery(params), nil)
	if err != nil {
		p.log("", "list", err)
		return interfaces.ListResult{}, err
	}

	result := rest.DecodeList(payload, p.def.PluralKey)
	if p.def.Normalize != nil {
		for i, record := range result.Data {
			result.Data[i] = p.def.Normalize(record)
		}
	}
	return result, nil
}

// GetOne fetches a single record by id.
func (p *Provider) GetOne(ctx context.Context, id string) (interfaces.Record, error) {
	id = p.recordID(id)
	endpoint, err := p.client.Endpoints().Record(p.def.Resource, url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		p.log(id, "get", err)
		return nil, err
	}
	return p.normalize(rest.DecodeOne(payload, p.def.SingularKey)), nil
}

// Create validates nothing: validation schemas run before any provider call.
// It encodes values per the resource's field table and POSTs them.
func (p *Provider) Create(ctx context.Context, values map[string]any) (interfaces.Record, error) {
	if p.def.DisableWrite {
		return nil, p.unsupported(ErrWriteUnsupported)
	}

	endpoint, err := p.client.Endpoints().Collection(p.def.Resource)
	if err != nil {
		return nil, err
	}

	body, err := p.encode(values)
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Do(ctx, http.MethodPost, endpoint, nil, body)
	if err != nil {
		p.log("", "create", err)
		return nil, err
	}
	return p.normalize(rest.DecodeOne(payload, p.def.SingularKey)), nil
}

// Update PUTs the encoded values at the record endpoint. File fields holding
// persisted path strings are left out of the payload, preserving the
// existing upload.
func (p *Provider) Update(ctx context.Context, id string, values map[string]any) (interfaces.Record, error) {
	if p.def.DisableWrite {
		return nil, p.unsupported(ErrWriteUnsupported)
	}

	id = p.recordID(id)
	endpoint, err := p.client.Endpoints().Record(p.def.Resource, url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	body, err := p.encode(values)
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Do(ctx, http.MethodPut, endpoint, nil, body)
	if err != nil {
		p.log(id, "update", err)
		return nil, err
	}
	return p.normalize(rest.DecodeOne(payload, p.def.SingularKey)), nil
}

// DeleteOne removes a record. Irreversible; the backend exposes no soft
// delete to this layer.
func (p *Provider) DeleteOne(ctx context.Context, id string) (interfaces.Record, error) {
	if p.def.DisableDelete {
		return nil, p.unsupported(ErrDeleteUnsupported)
	}

	id = p.recordID(id)
	endpoint, err := p.client.Endpoints().Record(p.def.Resource, url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	payload, err := p.client.Do(ctx, http.MethodDelete, endpoint, nil, nil)
	if err != nil {
		p.log(id, "delete", err)
		return nil, err
	}
	return p.normalize(rest.DecodeOne(payload, p.def.SingularKey)), nil
}

func (p *Provider) encode(values map[string]any) (*rest.Body, error) {
	if p.def.Prepare != nil {
		values = p.def.Prepare(values)
	}
	switch p.def.Encoding {
	case EncodingMultipart:
		return rest.BuildMultipart(values, p.def.Fields)
	default:
		if len(p.def.Fields) == 0 {
			return rest.JSONBody(values)
		}
		return rest.BuildJSON(values, p.def.Fields)
	}
}

func (p *Provider) normalize(record interfaces.Record) interfaces.Record {
	if record == nil || p.def.Normalize == nil {
		return record
	}
	return p.def.Normalize(record)
}

func (p *Provider) recordID(id string) string {
	if p.def.SingletonID != "" {
		return p.def.SingletonID
	}
	return strings.TrimSpace(id)
}

func (p *Provider) unsupported(sentinel error) error {
	return goerrors.Wrap(sentinel, goerrors.CategoryCommand, "operation not supported for resource").
		WithTextCode(operationUnsupportedCode)
}

func (p *Provider) log(id, operation string, err error) {
	logging.WithResource(p.logger, p.def.Resource, id).
		Error("provider.operation.failed", "operation", operation, "error", err)
}

func cloneValues(values map[string]any) map[string]any {
	cloned := make(map[string]any, len(values))
	for k, v := range values {
		cloned[k] = v
	}
	return cloned
}

func cloneRecord(record interfaces.Record) interfaces.Record {
	cloned := make(interfaces.Record, len(record))
	for k, v := range record {
		cloned[k] = v
	}
	return cloned
}
