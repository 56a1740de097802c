package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ContentStatus string

const (
	StatusDraft     ContentStatus = "DRAFT"
	StatusPublished ContentStatus = "PUBLISHED"
	StatusArchived  ContentStatus = "ARCHIVED"
	StatusScheduled ContentStatus = "SCHEDULED"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Content is a single instance of a ContentType. ContentData is opaque JSON;
// its shape is implied by the content type's field definitions but is not
// validated against them. Slug is unique within its content type.
type Content struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ContentTypeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_contents_type_slug;index" json:"content_type_id"`
	Slug          string         `gorm:"size:255;not null;uniqueIndex:idx_contents_type_slug" json:"slug"`
	AuthorID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Status        ContentStatus  `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	ContentData   datatypes.JSON `json:"content_data,omitempty"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
	Version       int            `gorm:"not null;default:1" json:"version"`
	PublishDate   *time.Time     `json:"publish_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	ContentType   ContentType    `gorm:"foreignKey:ContentTypeID" json:"-"`
	Author        User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (c *Content) Validate() error {
	if c.ContentTypeID == uuid.Nil {
		return &ValidationError{Field: "content_type_id", Reason: "is required"}
	}
	if c.AuthorID == uuid.Nil {
		return &ValidationError{Field: "author_id", Reason: "is required"}
	}
	if !slugRe.MatchString(c.Slug) {
		return &ValidationError{Field: "slug", Reason: "must be lowercase kebab-case"}
	}
	if c.Status != "" && !c.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be one of DRAFT, PUBLISHED, ARCHIVED, SCHEDULED"}
	}
	return nil
}

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived, StatusScheduled:
		return true
	}
	return false
}

// HasData reports whether ContentData holds anything beyond an empty or
// null JSON document.
func (c *Content) HasData() bool {
	trimmed := strings.TrimSpace(string(c.ContentData))
	switch trimmed {
	case "", "null", "{}", `""`:
		return false
	}
	return true
}

// Published returns a copy of the content marked PUBLISHED at the given time.
func (c Content) Published(at time.Time) Content {
	c.Status = StatusPublished
	c.PublishDate = &at
	return c
}
