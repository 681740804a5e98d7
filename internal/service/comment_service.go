package service

import (
	"context"
	"errors"

	"shopadmin/internal/models"
	"shopadmin/internal/repository"
)

const maxCommentLen = 10000

// CommentService creates and lists comments on posts and products.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	productRepo repository.ProductRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	productRepo repository.ProductRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		productRepo: productRepo,
	}
}

// CreateCommentInput targets exactly one of PostID and ProductID. Supplying
// both or neither is a validation error.
type CreateCommentInput struct {
	UserID    uint
	PostID    *uint
	ProductID *string
	Content   string
}

// CreateComment validates the target, checks the referent exists, and
// persists the comment with a server-generated timestamp. Persistence
// failures surface as a generic internal error; the cause is logged upstream
// but never exposed.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if (in.PostID == nil) == (in.ProductID == nil) {
		return nil, models.NewValidationError("bình luận phải gắn với đúng một bài viết hoặc một sản phẩm")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("nội dung bình luận là bắt buộc")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("nội dung bình luận quá dài")
	}

	if in.PostID != nil {
		if _, err := s.postRepo.GetByID(ctx, *in.PostID); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.productRepo.GetByID(ctx, *in.ProductID); err != nil {
			return nil, err
		}
	}

	comment := &models.Comment{
		Content:   in.Content,
		UserID:    in.UserID,
		PostID:    in.PostID,
		ProductID: in.ProductID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, models.NewInternalError("Có lỗi trong quá trình bình luận!", err)
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment removes a comment by id. Unknown ids yield a not-found error.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	return s.commentRepo.Delete(ctx, id)
}

// ListPostComments returns all comments on a post, newest first.
func (s *CommentService) ListPostComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

// ListProductComments returns all comments on a product, newest first.
func (s *CommentService) ListProductComments(ctx context.Context, productID string) ([]*models.Comment, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByProduct(ctx, productID)
}
