// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"shopadmin/internal/cache"
	"shopadmin/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter holds the optional admin list filters. Zero values impose no
// constraint; supplied filters combine with AND.
type ProductFilter struct {
	ID         string
	Name       string
	CategoryID uint
	BrandID    uint
}

// ProductRepository defines persistence operations for products and their
// owned size and feedback-image records.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	UpsertSize(ctx context.Context, size *models.ProductSize) error
	ListSizes(ctx context.Context, productID string) ([]models.ProductSize, error)
	ReplaceFeedbackImages(ctx context.Context, productID string, images []models.Image) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a new ProductRepository implementation.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := cache.Aside(ctx, cache.ProductKey(id), &product, cache.ProductTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Category").
			Preload("Brand").
			Preload("Sizes").
			Preload("FeedbackImages").
			Where("id = ?", id).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Product", id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.ID != "" {
		q = q.Where("id = ?", filter.ID)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BrandID != 0 {
		q = q.Where("brand_id = ?", filter.BrandID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*models.Product
	err := q.
		Preload("Category").
		Preload("Brand").
		Order("created_at, id").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Update writes the product row only. Associations are omitted so that
// preloaded Category/Brand structs cannot overwrite a changed foreign key;
// sizes and feedback images have their own operations.
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
	if err == nil {
		cache.InvalidateProduct(ctx, product.ID)
	}
	return err
}

// Delete removes the product together with its owned size records and
// feedback-image associations in one transaction, so no orphans remain.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Product", id)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM product_feedback_images WHERE product_id = ?", id).Error
	})
	if err == nil {
		cache.InvalidateProduct(ctx, id)
	}
	return err
}

// UpsertSize inserts the (product, size) record or overwrites its quantity.
func (r *productRepository) UpsertSize(ctx context.Context, size *models.ProductSize) error {
	err := r.db.WithContext(ctx).Exec(`
INSERT INTO product_sizes (product_id, size, quantity, created_at, updated_at)
VALUES (?, ?, ?, NOW(), NOW())
ON CONFLICT (product_id, size)
DO UPDATE SET
  quantity = EXCLUDED.quantity,
  updated_at = NOW()
`, size.ProductID, size.Size, size.Quantity).Error
	if err == nil {
		cache.InvalidateProduct(ctx, size.ProductID)
	}
	return err
}

func (r *productRepository) ListSizes(ctx context.Context, productID string) ([]models.ProductSize, error) {
	var sizes []models.ProductSize
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("size ASC").
		Find(&sizes).Error
	return sizes, err
}

// ReplaceFeedbackImages swaps the product's feedback-image association set
// transactionally; readers observe the old set or the new one, never a mix.
func (r *productRepository) ReplaceFeedbackImages(ctx context.Context, productID string, images []models.Image) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_feedback_images WHERE product_id = ?", productID).Error; err != nil {
			return err
		}
		for _, img := range images {
			if err := tx.Exec(
				"INSERT INTO product_feedback_images (product_id, image_id) VALUES (?, ?)",
				productID, img.ID,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err == nil {
		cache.InvalidateProduct(ctx, productID)
	}
	return err
}
