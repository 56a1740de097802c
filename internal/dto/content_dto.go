package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateContentTypeRequest struct {
	Name             string          `json:"name"`
	APIIdentifier    string          `json:"api_identifier"`
	Description      string          `json:"description,omitempty"`
	FieldDefinitions json.RawMessage `json:"field_definitions,omitempty"`
}

type CreateContentRequest struct {
	ContentTypeID uuid.UUID       `json:"content_type_id"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status,omitempty"`
	ContentData   json.RawMessage `json:"content_data,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
}
