package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

// ContentTypeService manages content type schemas. Field definitions are
// stored opaque; no schema interpretation happens here.
type ContentTypeService struct {
	contentTypes repository.ContentTypeRepository
	scope        repository.Scope
}

func NewContentTypeService(contentTypes repository.ContentTypeRepository, scope repository.Scope) *ContentTypeService {
	return &ContentTypeService{contentTypes: contentTypes, scope: scope}
}

// CreateContentType checks name then api identifier for duplicates and
// persists the candidate otherwise unchanged.
func (s *ContentTypeService) CreateContentType(ctx context.Context, candidate *models.ContentType) (*models.ContentType, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	candidate.Active = true
	if candidate.Version == 0 {
		candidate.Version = 1
	}

	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.ContentType, error) {
		taken, err := s.contentTypes.ExistsByName(ctx, candidate.Name)
		if err != nil {
			return nil, fmt.Errorf("check name: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "name", Value: candidate.Name}
		}

		taken, err = s.contentTypes.ExistsByAPIIdentifier(ctx, candidate.APIIdentifier)
		if err != nil {
			return nil, fmt.Errorf("check api identifier: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "api_identifier", Value: candidate.APIIdentifier}
		}

		candidate.ID = uuid.New()
		return s.contentTypes.Save(ctx, candidate)
	})
}

func (s *ContentTypeService) FindByID(ctx context.Context, id uuid.UUID) (*models.ContentType, error) {
	return s.contentTypes.FindByID(ctx, id)
}

func (s *ContentTypeService) FindByAPIIdentifier(ctx context.Context, apiIdentifier string) (*models.ContentType, error) {
	return s.contentTypes.FindByAPIIdentifier(ctx, apiIdentifier)
}

func (s *ContentTypeService) ListContentTypes(ctx context.Context) ([]models.ContentType, error) {
	return s.contentTypes.FindAll(ctx)
}

func (s *ContentTypeService) ListActive(ctx context.Context) ([]models.ContentType, error) {
	return s.contentTypes.FindActive(ctx)
}

// DeactivateContentType persists a copy with Active=false. Dependent
// content records are not cascaded.
func (s *ContentTypeService) DeactivateContentType(ctx context.Context, id uuid.UUID) (*models.ContentType, error) {
	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.ContentType, error) {
		ct, err := s.contentTypes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if ct == nil {
			return nil, ErrContentTypeNotFound
		}
		deactivated := ct.Deactivated()
		return s.contentTypes.Save(ctx, &deactivated)
	})
}
