package service

import (
	"context"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"
)

// CatalogService exposes the brand and category reference lists.
type CatalogService struct {
	brandRepo    repository.BrandRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(brandRepo repository.BrandRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{brandRepo: brandRepo, categoryRepo: categoryRepo}
}

// ListBrands returns all brands.
func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.brandRepo.List(ctx)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}
