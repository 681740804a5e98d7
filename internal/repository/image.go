package repository

import (
	"context"

	"shopadmin/internal/models"

	"gorm.io/gorm"
)

// ImageRepository defines read operations over the image pool used by the
// admin pages and the feedback-image association.
type ImageRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Image, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository returns a repository implementation for image metadata.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) ListByUser(ctx context.Context, userID uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&images).Error
	return images, err
}

func (r *imageRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Image, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var images []models.Image
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&images).Error
	return images, err
}
