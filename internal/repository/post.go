package repository

import (
	"context"
	"errors"

	"shopadmin/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines read operations for posts, which the comment flow
// uses to verify referents. Posts themselves are created by the seeder.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}
	return &post, nil
}
