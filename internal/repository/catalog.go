package repository

import (
	"context"
	"errors"

	"shopadmin/internal/cache"
	"shopadmin/internal/models"

	"gorm.io/gorm"
)

// BrandRepository defines read operations for brand reference data.
type BrandRepository interface {
	List(ctx context.Context) ([]models.Brand, error)
	GetByID(ctx context.Context, id uint) (*models.Brand, error)
}

// CategoryRepository defines read operations for category reference data.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
}

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository returns a new BrandRepository implementation.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// List returns all brands, cached under a shared key since the set is small
// and read-mostly.
func (r *brandRepository) List(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := cache.Aside(ctx, cache.BrandsKey, &brands, cache.CatalogTTL, func() error {
		return r.db.WithContext(ctx).Order("name").Find(&brands).Error
	})
	return brands, err
}

func (r *brandRepository) GetByID(ctx context.Context, id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Brand", id)
		}
		return nil, err
	}
	return &brand, nil
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CatalogTTL, func() error {
		return r.db.WithContext(ctx).Order("name").Find(&categories).Error
	})
	return categories, err
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", id)
		}
		return nil, err
	}
	return &category, nil
}
