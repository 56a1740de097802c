package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
)

// MediaService keeps path and metadata bookkeeping for uploaded assets.
// Byte storage, mime sniffing and thumbnailing happen elsewhere.
type MediaService struct {
	media repository.MediaRepository
	scope repository.Scope
}

func NewMediaService(media repository.MediaRepository, scope repository.Scope) *MediaService {
	return &MediaService{media: media, scope: scope}
}

// UploadMedia enforces file path uniqueness and persists the candidate
// otherwise unchanged.
func (s *MediaService) UploadMedia(ctx context.Context, candidate *models.Media) (*models.Media, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return repository.InScope(ctx, s.scope, func(ctx context.Context) (*models.Media, error) {
		taken, err := s.media.ExistsByFilePath(ctx, candidate.FilePath)
		if err != nil {
			return nil, fmt.Errorf("check file path: %w", err)
		}
		if taken {
			return nil, &DuplicateError{Field: "file_path", Value: candidate.FilePath}
		}

		candidate.ID = uuid.New()
		return s.media.Save(ctx, candidate)
	})
}

func (s *MediaService) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	return s.media.FindByID(ctx, id)
}

func (s *MediaService) FindByFilePath(ctx context.Context, filePath string) (*models.Media, error) {
	return s.media.FindByFilePath(ctx, filePath)
}

func (s *MediaService) ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]models.Media, error) {
	return s.media.FindByUploader(ctx, uploaderID)
}

// FindByMimeTypePrefix lists assets whose mime type starts with prefix,
// e.g. "image/" for all images.
func (s *MediaService) FindByMimeTypePrefix(ctx context.Context, prefix string) ([]models.Media, error) {
	return s.media.FindByMimeTypePrefix(ctx, prefix)
}

func (s *MediaService) SearchFilename(ctx context.Context, term string) ([]models.Media, error) {
	return s.media.SearchFilename(ctx, term)
}
