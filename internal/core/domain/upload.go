package domain

import (
	"errors"
	"time"
)

var ErrUploadTooLarge = errors.New("upload exceeds size limit")
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Upload records the metadata of a stored file. The bytes live on disk under
// StoredName; FileName keeps the client's original name for display only.
type Upload struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	FileName    string    `json:"file_name"`
	StoredName  string    `json:"stored_name"`
	Extension   string    `json:"extension"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
