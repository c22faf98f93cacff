// Package schemas holds the client-side validation contracts for every
// managed resource. Validation is a pure, synchronous guard that runs before
// any provider call: no I/O, no backend uniqueness checks. Every violated
// constraint yields exactly one message attached to its field, and
// independent field errors surface together.
package schemas

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-admin-data/pkg/interfaces"
)

// FileUpload re-exports the in-memory file handle validated by file rules.
type FileUpload = interfaces.FileUpload

// Entity status values. Draft and Published never relax validation relative
// to one another; schemas do not branch on status.
const (
	StatusDraft     = "Draft"
	StatusPublished = "Published"
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
)

const (
	// MB in bytes, for file-size ceilings.
	MB int64 = 1 << 20

	maxTags    = 10
	dateLayout = "2006-01-02"
)

var (
	errTagsDuplicate  = validation.NewError("admin.schema.tags_duplicate", "tags must be unique")
	errEndBeforeStart = validation.NewError("admin.schema.end_before_start", "end date must not precede start date")
	errFileTooLarge   = validation.NewError("admin.schema.file_too_large", "file exceeds the size limit")
	errFileType       = validation.NewError("admin.schema.file_type", "file type is not allowed")
	errImageRequired  = validation.NewError("admin.schema.image_required", "an image is required")
)

var imageTypes = []string{"image/jpeg", "image/png", "image/webp"}

var popupMediaTypes = append(append([]string{}, imageTypes...), "video/mp4")

// uniqueStrings rejects duplicate entries in a string slice.
func uniqueStrings(value interface{}) error {
	items, ok := value.([]string)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if _, dup := seen[key]; dup {
			return errTagsDuplicate
		}
		seen[key] = struct{}{}
	}
	return nil
}

// fileType builds a MIME allow-list rule for an optional file handle.
func fileType(allowed ...string) validation.RuleFunc {
	return func(value interface{}) error {
		upload := uploadValue(value)
		if upload == nil {
			return nil
		}
		for _, contentType := range allowed {
			if strings.EqualFold(upload.ContentType, contentType) {
				return nil
			}
		}
		return errFileType
	}
}

// fileMaxSize builds a size-ceiling rule for an optional file handle.
func fileMaxSize(limit int64) validation.RuleFunc {
	return func(value interface{}) error {
		upload := uploadValue(value)
		if upload == nil {
			return nil
		}
		if upload.Size > limit {
			return errFileTooLarge
		}
		return nil
	}
}

// dateNotBefore enforces the cross-field ordering rule. It short-circuits to
// valid when either side is absent or unparsable; the Date rule on the field
// itself reports malformed values.
func dateNotBefore(start string) validation.RuleFunc {
	return func(value interface{}) error {
		end, _ := value.(string)
		if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
			return nil
		}
		startAt, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil
		}
		endAt, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil
		}
		if endAt.Before(startAt) {
			return errEndBeforeStart
		}
		return nil
	}
}

func uploadValue(value interface{}) *FileUpload {
	switch v := value.(type) {
	case *FileUpload:
		return v
	case FileUpload:
		return &v
	default:
		return nil
	}
}
