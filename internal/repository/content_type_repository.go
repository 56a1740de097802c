package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cemunal/contenthub/internal/models"
)

// ContentTypeRepository is the persistence port for content type schemas.
type ContentTypeRepository interface {
	Save(ctx context.Context, ct *models.ContentType) (*models.ContentType, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.ContentType, error)
	FindByName(ctx context.Context, name string) (*models.ContentType, error)
	FindByAPIIdentifier(ctx context.Context, apiIdentifier string) (*models.ContentType, error)
	FindAll(ctx context.Context) ([]models.ContentType, error)
	FindActive(ctx context.Context) ([]models.ContentType, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByAPIIdentifier(ctx context.Context, apiIdentifier string) (bool, error)
}

type GormContentTypeRepository struct {
	db *gorm.DB
}

func NewGormContentTypeRepository(db *gorm.DB) *GormContentTypeRepository {
	return &GormContentTypeRepository{db: db}
}

func (r *GormContentTypeRepository) Save(ctx context.Context, ct *models.ContentType) (*models.ContentType, error) {
	if err := conn(ctx, r.db).Save(ct).Error; err != nil {
		return nil, err
	}
	return ct, nil
}

func (r *GormContentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ContentType, error) {
	var ct models.ContentType
	err := conn(ctx, r.db).First(&ct, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *GormContentTypeRepository) FindByName(ctx context.Context, name string) (*models.ContentType, error) {
	var ct models.ContentType
	err := conn(ctx, r.db).Where("name = ?", name).First(&ct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *GormContentTypeRepository) FindByAPIIdentifier(ctx context.Context, apiIdentifier string) (*models.ContentType, error) {
	var ct models.ContentType
	err := conn(ctx, r.db).Where("api_identifier = ?", apiIdentifier).First(&ct).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

func (r *GormContentTypeRepository) FindAll(ctx context.Context) ([]models.ContentType, error) {
	var cts []models.ContentType
	err := conn(ctx, r.db).Order("name ASC").Find(&cts).Error
	return cts, err
}

func (r *GormContentTypeRepository) FindActive(ctx context.Context) ([]models.ContentType, error) {
	var cts []models.ContentType
	err := conn(ctx, r.db).Where("active = ?", true).Order("name ASC").Find(&cts).Error
	return cts, err
}

func (r *GormContentTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ContentType{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *GormContentTypeRepository) ExistsByAPIIdentifier(ctx context.Context, apiIdentifier string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ContentType{}).Where("api_identifier = ?", apiIdentifier).Count(&count).Error
	return count > 0, err
}
