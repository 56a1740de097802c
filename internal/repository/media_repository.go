package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemunal/contenthub/internal/models"
)

// MediaRepository is the persistence port for media assets.
type MediaRepository interface {
	Save(ctx context.Context, media *models.Media) (*models.Media, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error)
	FindByFilePath(ctx context.Context, filePath string) (*models.Media, error)
	FindByUploader(ctx context.Context, uploaderID uuid.UUID) ([]models.Media, error)
	FindByMimeTypePrefix(ctx context.Context, prefix string) ([]models.Media, error)
	SearchFilename(ctx context.Context, term string) ([]models.Media, error)
	ExistsByFilePath(ctx context.Context, filePath string) (bool, error)
}

type GormMediaRepository struct {
	db *gorm.DB
}

func NewGormMediaRepository(db *gorm.DB) *GormMediaRepository {
	return &GormMediaRepository{db: db}
}

func (r *GormMediaRepository) Save(ctx context.Context, media *models.Media) (*models.Media, error) {
	if err := conn(ctx, r.db).Save(media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *GormMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Media, error) {
	var media models.Media
	err := conn(ctx, r.db).First(&media, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *GormMediaRepository) FindByFilePath(ctx context.Context, filePath string) (*models.Media, error) {
	var media models.Media
	err := conn(ctx, r.db).Where("file_path = ?", filePath).First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *GormMediaRepository) FindByUploader(ctx context.Context, uploaderID uuid.UUID) ([]models.Media, error) {
	var media []models.Media
	err := conn(ctx, r.db).
		Where("uploader_id = ?", uploaderID).
		Order("created_at DESC").
		Find(&media).Error
	return media, err
}

// FindByMimeTypePrefix matches on the leading segment of the mime type:
// "image/" matches "image/jpeg" but not "application/image".
func (r *GormMediaRepository) FindByMimeTypePrefix(ctx context.Context, prefix string) ([]models.Media, error) {
	var media []models.Media
	err := conn(ctx, r.db).
		Where("mime_type LIKE ?", prefix+"%").
		Order("created_at DESC").
		Find(&media).Error
	return media, err
}

func (r *GormMediaRepository) SearchFilename(ctx context.Context, term string) ([]models.Media, error) {
	var media []models.Media
	err := conn(ctx, r.db).
		Where("filename LIKE ?", "%"+term+"%").
		Order("created_at DESC").
		Find(&media).Error
	return media, err
}

func (r *GormMediaRepository) ExistsByFilePath(ctx context.Context, filePath string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Media{}).Where("file_path = ?", filePath).Count(&count).Error
	return count > 0, err
}
