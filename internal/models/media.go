package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Media records metadata for an uploaded asset. FilePath doubles as the
// storage key and is globally unique; the bytes themselves live outside
// this backend.
type Media struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Filename    string         `gorm:"size:255;not null" json:"filename"`
	FilePath    string         `gorm:"size:500;not null;uniqueIndex" json:"file_path"`
	MimeType    string         `gorm:"size:100;not null;index" json:"mime_type"`
	FileSize    int64          `gorm:"not null" json:"file_size"`
	UploaderID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"uploader_id"`
	AltText     string         `gorm:"size:255" json:"alt_text,omitempty"`
	Title       string         `gorm:"size:255" json:"title,omitempty"`
	Description string         `gorm:"size:1000" json:"description,omitempty"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Uploader    User           `gorm:"foreignKey:UploaderID" json:"-"`
}

func (m *Media) Validate() error {
	if m.Filename == "" {
		return &ValidationError{Field: "filename", Reason: "is required"}
	}
	if m.FilePath == "" {
		return &ValidationError{Field: "file_path", Reason: "is required"}
	}
	if m.MimeType == "" {
		return &ValidationError{Field: "mime_type", Reason: "is required"}
	}
	if m.FileSize < 0 {
		return &ValidationError{Field: "file_size", Reason: "must not be negative"}
	}
	if m.UploaderID == uuid.Nil {
		return &ValidationError{Field: "uploader_id", Reason: "is required"}
	}
	return nil
}
