package server

import (
	"shopadmin/internal/models"
	"shopadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreatePostComment attaches a new comment to a post.
func (s *Server) CreatePostComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := c.Locals("userID").(uint)
	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  &postID,
		Content: req.Content,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// CreateProductComment attaches a new comment to a product.
func (s *Server) CreateProductComment(c *fiber.Ctx) error {
	productID, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := c.Locals("userID").(uint)
	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:    userID,
		ProductID: &productID,
		Content:   req.Content,
	})
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment removes a comment. Admin only.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), id); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Xóa bình luận thành công!"})
}

// GetPostComments lists a post's comments, newest first.
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListPostComments(c.UserContext(), postID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}

// GetProductComments lists a product's comments, newest first.
func (s *Server) GetProductComments(c *fiber.Ctx) error {
	productID, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListProductComments(c.UserContext(), productID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"comments": comments})
}
