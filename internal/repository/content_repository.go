package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemunal/contenthub/internal/models"
)

// ContentRepository is the persistence port for content instances.
// The (content_type_id, slug) pair is the composite lookup key.
type ContentRepository interface {
	Save(ctx context.Context, content *models.Content) (*models.Content, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error)
	FindByContentTypeAndSlug(ctx context.Context, contentTypeID uuid.UUID, slug string) (*models.Content, error)
	FindByContentType(ctx context.Context, contentTypeID uuid.UUID) ([]models.Content, error)
	FindByStatus(ctx context.Context, status models.ContentStatus) ([]models.Content, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Content, error)
	FindByContentTypeAndStatus(ctx context.Context, contentTypeID uuid.UUID, status models.ContentStatus) ([]models.Content, error)
	FindPublishedBetween(ctx context.Context, from, to time.Time) ([]models.Content, error)
	SearchSlug(ctx context.Context, term string) ([]models.Content, error)
	ExistsByContentTypeAndSlug(ctx context.Context, contentTypeID uuid.UUID, slug string) (bool, error)
}

type GormContentRepository struct {
	db *gorm.DB
}

func NewGormContentRepository(db *gorm.DB) *GormContentRepository {
	return &GormContentRepository{db: db}
}

func (r *GormContentRepository) Save(ctx context.Context, content *models.Content) (*models.Content, error) {
	if err := conn(ctx, r.db).Save(content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

func (r *GormContentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	var content models.Content
	err := conn(ctx, r.db).First(&content, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *GormContentRepository) FindByContentTypeAndSlug(ctx context.Context, contentTypeID uuid.UUID, slug string) (*models.Content, error) {
	var content models.Content
	err := conn(ctx, r.db).
		Where("content_type_id = ? AND slug = ?", contentTypeID, slug).
		First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *GormContentRepository) FindByContentType(ctx context.Context, contentTypeID uuid.UUID) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("content_type_id = ?", contentTypeID).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) FindByStatus(ctx context.Context, status models.ContentStatus) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) FindByContentTypeAndStatus(ctx context.Context, contentTypeID uuid.UUID, status models.ContentStatus) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("content_type_id = ? AND status = ?", contentTypeID, status).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) FindPublishedBetween(ctx context.Context, from, to time.Time) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("publish_date >= ? AND publish_date <= ?", from, to).
		Order("publish_date DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) SearchSlug(ctx context.Context, term string) ([]models.Content, error) {
	var contents []models.Content
	err := conn(ctx, r.db).
		Where("slug LIKE ?", "%"+term+"%").
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *GormContentRepository) ExistsByContentTypeAndSlug(ctx context.Context, contentTypeID uuid.UUID, slug string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Content{}).
		Where("content_type_id = ? AND slug = ?", contentTypeID, slug).
		Count(&count).Error
	return count > 0, err
}
