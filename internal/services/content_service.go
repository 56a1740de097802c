package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

// ContentService manages content instances. ContentData stays opaque:
// it is not validated against the content type's field definitions.
type ContentService struct {
	contents repository.ContentRepository
	scope    repository.Scope
}

func NewContentService(contents repository.ContentRepository, scope repository.Scope) *ContentService {
	return &ContentService{contents: contents, scope: scope}
}

// CreateContent enforces slug uniqueness within the content type and
// persists the candidate otherwise unchanged.
func (s *ContentService) CreateContent(ctx context.Context, candidate *models.Content) (*models.Content, error) {
	if candidate.Status == "" {
		candidate.Status = models.StatusDraft
	}
	if candidate.Version == 0 {
		candidate.Version = 1
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.Content, error) {
		taken, err := s.contents.ExistsByContentTypeAndSlug(ctx, candidate.ContentTypeID, candidate.Slug)
		if err != nil {
			return nil, fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "slug", Value: candidate.Slug}
		}

		candidate.ID = uuid.New()
		return s.contents.Save(ctx, candidate)
	})
}

// PublishContent persists a copy with Status=PUBLISHED and PublishDate=now.
// Fails on unknown ids and on blank content data; re-publishing an already
// published or archived item is not guarded against.
func (s *ContentService) PublishContent(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.Content, error) {
		content, err := s.contents.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if content == nil {
			return nil, ErrContentNotFound
		}
		if !content.HasData() {
			return nil, ErrEmptyContent
		}
		published := content.Published(time.Now().UTC())
		return s.contents.Save(ctx, &published)
	})
}

func (s *ContentService) FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	return s.contents.FindByID(ctx, id)
}

func (s *ContentService) FindBySlug(ctx context.Context, contentTypeID uuid.UUID, slug string) (*models.Content, error) {
	return s.contents.FindByContentTypeAndSlug(ctx, contentTypeID, slug)
}

func (s *ContentService) ListByContentType(ctx context.Context, contentTypeID uuid.UUID) ([]models.Content, error) {
	return s.contents.FindByContentType(ctx, contentTypeID)
}

func (s *ContentService) ListByStatus(ctx context.Context, status models.ContentStatus) ([]models.Content, error) {
	return s.contents.FindByStatus(ctx, status)
}

func (s *ContentService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Content, error) {
	return s.contents.FindByAuthor(ctx, authorID)
}

func (s *ContentService) ListByContentTypeAndStatus(ctx context.Context, contentTypeID uuid.UUID, status models.ContentStatus) ([]models.Content, error) {
	return s.contents.FindByContentTypeAndStatus(ctx, contentTypeID, status)
}

func (s *ContentService) ListPublishedBetween(ctx context.Context, from, to time.Time) ([]models.Content, error) {
	return s.contents.FindPublishedBetween(ctx, from, to)
}

func (s *ContentService) SearchSlug(ctx context.Context, term string) ([]models.Content, error) {
	return s.contents.SearchSlug(ctx, term)
}
