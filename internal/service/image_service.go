package service

import (
	"context"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"
)

// ImageService exposes a user's uploaded image pool for the admin pages'
// image picker.
type ImageService struct {
	imageRepo repository.ImageRepository
}

// NewImageService creates a new ImageService.
func NewImageService(imageRepo repository.ImageRepository) *ImageService {
	return &ImageService{imageRepo: imageRepo}
}

// ListUserImages returns the images uploaded by the given user, newest first.
func (s *ImageService) ListUserImages(ctx context.Context, userID uint) ([]models.Image, error) {
	return s.imageRepo.ListByUser(ctx, userID)
}
