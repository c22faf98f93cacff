package rest

import (
	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// DecodeList normalizes a list response body. The backend is inconsistent
// about envelopes, so keys are tried in priority order: the resource-specific
// plural key, the generic "data" key, then the whole payload as a bare array.
// Total prefers an explicit "total" field and falls back to the array length,
// which under-counts on paginated responses; that imprecision is a backend
// contract gap, not something this layer can repair.
func DecodeList(payload any, resourceKey string) interfaces.ListResult {
	envelope, _ := payload.(map[string]any)

	raw := payload
	if envelope != nil {
		if v, ok := envelope[resourceKey]; ok {
			raw = v
		} else if v, ok := envelope["data"]; ok {
			raw = v
		}
	}

	data := toRecords(raw)
	result := interfaces.ListResult{Data: data, Total: len(data)}
	if envelope != nil {
		if total, ok := numberField(envelope, "total"); ok {
			result.Total = total
		}
	}
	return result
}

// DecodeOne normalizes a single-record response body, trying the resource
// singular key, then "data", then the payload itself.
func DecodeOne(payload any, singularKey string) interfaces.Record {
	envelope, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := envelope[singularKey].(map[string]any); ok {
		return interfaces.Record(v)
	}
	if v, ok := envelope["data"].(map[string]any); ok {
		return interfaces.Record(v)
	}
	return interfaces.Record(envelope)
}

func toRecords(raw any) []interfaces.Record {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	records := make([]interfaces.Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, interfaces.Record(m))
		}
	}
	return records
}

func numberField(envelope map[string]any, key string) (int, bool) {
	switch v := envelope[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
