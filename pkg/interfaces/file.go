package interfaces

import "io"

// FileUpload is an in-memory file handle flowing through create/update
// values. A string path in the same position means "keep the persisted
// file"; only FileUpload values are ever encoded into a request body.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}
