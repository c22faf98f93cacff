package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// FieldKind selects how a mapped field is encoded into the request body.
type FieldKind int

const (
	// KindScalar appends the value as a plain string.
	KindScalar FieldKind = iota
	// KindJSON serializes the value (typically a tag array) as one
	// JSON-stringified field.
	KindJSON
	// KindFile appends the value only when it is an in-memory file handle.
	KindFile
)

// FieldSpec maps one client-side field onto the backend's expected key. Each
// resource declares its own table; the builders below are the only encoding
// logic in the module.
type FieldSpec struct {
	// Name is the client-side field as it appears in the values map.
	Name string
	// Key is the backend form/JSON key. Empty means same as Name.
	Key string
	// Kind selects the encoding. Defaults to KindScalar.
	Kind FieldKind
	// Default substitutes a backend-side default when the value is absent.
	// Only honored by the JSON builder.
	Default any
}

func (f FieldSpec) key() string {
	if f.Key != "" {
		return f.Key
	}
	return f.Name
}

// Body is an encoded request payload ready for the HTTP client.
type Body struct {
	ContentType string
	Reader      io.Reader
}

// BuildMultipart encodes values into multipart form data following the
// mapping table: scalars as strings, KindJSON fields as a single
// JSON-stringified part, files only when the value is a *FileUpload. String
// values on file fields are persisted backend paths and are never
// re-uploaded. Unmapped values do not travel.
func BuildMultipart(values map[string]any, fields []FieldSpec) (*Body, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok || value == nil {
			continue
		}

		switch field.Kind {
		case KindFile:
			upload, ok := fileHandle(value)
			if !ok {
				continue
			}
			part, err := writer.CreatePart(filePartHeader(field.key(), upload))
			if err != nil {
				return nil, wrapEncodingError(err)
			}
			if upload.Content != nil {
				if _, err := io.Copy(part, upload.Content); err != nil {
					return nil, wrapEncodingError(err)
				}
			}
		case KindJSON:
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, wrapEncodingError(err)
			}
			if err := writer.WriteField(field.key(), string(encoded)); err != nil {
				return nil, wrapEncodingError(err)
			}
		default:
			if err := writer.WriteField(field.key(), scalarString(value)); err != nil {
				return nil, wrapEncodingError(err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, wrapEncodingError(err)
	}
	return &Body{ContentType: writer.FormDataContentType(), Reader: buf}, nil
}

// BuildJSON encodes values as a JSON object restricted to the mapping table,
// substituting declared defaults for absent optional fields.
func BuildJSON(values map[string]any, fields []FieldSpec) (*Body, error) {
	payload := make(map[string]any, len(fields))
	for _, field := range fields {
		value, ok := values[field.Name]
		if !ok || value == nil {
			if field.Default != nil {
				payload[field.key()] = field.Default
			}
			continue
		}
		payload[field.key()] = value
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return &Body{ContentType: "application/json", Reader: bytes.NewReader(encoded)}, nil
}

// JSONBody encodes an arbitrary value without an allow-list. Used by the
// generic fallback provider and the auth provider.
func JSONBody(value any) (*Body, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return &Body{ContentType: "application/json", Reader: bytes.NewReader(encoded)}, nil
}

func fileHandle(value any) (*interfaces.FileUpload, bool) {
	switch v := value.(type) {
	case *interfaces.FileUpload:
		return v, v != nil
	case interfaces.FileUpload:
		return &v, true
	default:
		return nil, false
	}
}

func filePartHeader(key string, upload *interfaces.FileUpload) textproto.MIMEHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(key), escapeQuotes(upload.Name)))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	return header
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
