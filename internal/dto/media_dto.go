package dto

import "encoding/json"

type UploadMediaRequest struct {
	Filename    string          `json:"filename"`
	FilePath    string          `json:"file_path"`
	MimeType    string          `json:"mime_type"`
	FileSize    int64           `json:"file_size"`
	AltText     string          `json:"alt_text,omitempty"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description,omitempty"`
	Tags        json.RawMessage `json:"tags,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}
