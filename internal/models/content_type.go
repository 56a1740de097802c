package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	contentTypeNameRe = regexp.MustCompile(`^.{2,100}$`)
	apiIdentifierRe   = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
)

// ContentType is a named schema describing the shape of Content payloads.
// FieldDefinitions is stored as an opaque JSON document of the form
// {"fields": [{"name", "type", "required", "validations"}]} and is never
// interpreted by the service layer.
type ContentType struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string         `gorm:"size:100;not null;uniqueIndex" json:"name"`
	APIIdentifier    string         `gorm:"size:100;not null;uniqueIndex" json:"api_identifier"`
	Description      string         `gorm:"size:500" json:"description,omitempty"`
	FieldDefinitions datatypes.JSON `json:"field_definitions,omitempty"`
	Active           bool           `gorm:"not null;default:true" json:"active"`
	Version          int            `gorm:"not null;default:1" json:"version"`
	CreatedByID      uuid.UUID      `gorm:"type:uuid;index" json:"created_by"`
	UpdatedByID      uuid.UUID      `gorm:"type:uuid" json:"updated_by"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	CreatedBy        User           `gorm:"foreignKey:CreatedByID" json:"-"`
}

func (ct *ContentType) Validate() error {
	if !contentTypeNameRe.MatchString(ct.Name) {
		return &ValidationError{Field: "name", Reason: "must be 2-100 characters"}
	}
	if !apiIdentifierRe.MatchString(ct.APIIdentifier) {
		return &ValidationError{Field: "api_identifier", Reason: "must be lowercase snake_case"}
	}
	if len(ct.Description) > 500 {
		return &ValidationError{Field: "description", Reason: "must be at most 500 characters"}
	}
	return nil
}

// Deactivated returns a copy of the content type with Active cleared.
// Dependent content is untouched.
func (ct ContentType) Deactivated() ContentType {
	ct.Active = false
	return ct
}
