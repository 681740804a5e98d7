package server

import (
	"shopadmin/internal/middleware"
	"shopadmin/internal/models"
	"shopadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

type saveProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  uint   `json:"category_id"`
	BrandID     uint   `json:"brand_id"`
	ImageIDs    []uint `json:"image_ids"`
}

func (r saveProductRequest) toInput() service.SaveProductInput {
	return service.SaveProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		BrandID:     r.BrandID,
		ImageIDs:    r.ImageIDs,
	}
}

// GetAdminProducts returns one page of products matching the query filters.
func (s *Server) GetAdminProducts(c *fiber.Ctx) error {
	in := service.ListProductsInput{
		ID:         c.Query("id"),
		Name:       c.Query("name"),
		CategoryID: queryUint(c, "category_id"),
		BrandID:    queryUint(c, "brand_id"),
		Page:       parsePage(c),
	}

	page, err := s.productService.AdminListProducts(c.UserContext(), in)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(page)
}

// GetAdminProduct returns one product with sizes and feedback images.
func (s *Server) GetAdminProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(product)
}

// CreateProduct creates a product from the request body.
func (s *Server) CreateProduct(c *fiber.Ctx) error {
	var req saveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.productService.CreateProduct(c.UserContext(), req.toInput())
	if err != nil {
		middleware.ProductMutations.WithLabelValues("create", "error").Inc()
		return mapServiceError(c, err)
	}

	middleware.ProductMutations.WithLabelValues("create", "ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Thêm sản phẩm thành công!",
		"product": product,
	})
}

// UpdateProduct updates a product's fields and, when image_ids is present,
// its feedback-image set.
func (s *Server) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	var req saveProductRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	product, err := s.productService.UpdateProduct(c.UserContext(), id, req.toInput())
	if err != nil {
		middleware.ProductMutations.WithLabelValues("update", "error").Inc()
		return mapServiceError(c, err)
	}

	middleware.ProductMutations.WithLabelValues("update", "ok").Inc()
	return c.JSON(fiber.Map{
		"message": "Sửa sản phẩm thành công!",
		"product": product,
	})
}

// DeleteProduct deletes one product with its sizes and image links.
func (s *Server) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.productService.DeleteProduct(c.UserContext(), id); err != nil {
		middleware.ProductMutations.WithLabelValues("delete", "error").Inc()
		return mapServiceError(c, err)
	}

	middleware.ProductMutations.WithLabelValues("delete", "ok").Inc()
	return c.JSON(fiber.Map{"message": "Xóa sản phẩm thành công!"})
}

// BulkDeleteProducts deletes each listed id, reporting ids that failed.
func (s *Server) BulkDeleteProducts(c *fiber.Ctx) error {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.productService.BulkDeleteProducts(c.UserContext(), req.IDs)
	if err != nil {
		return mapServiceError(c, err)
	}

	middleware.ProductMutations.WithLabelValues("bulk_delete", "ok").Inc()
	return c.JSON(fiber.Map{
		"message": "Xóa sản phẩm thành công!",
		"deleted": result.Deleted,
		"failed":  result.Failed,
	})
}

// GetProductSizes lists a product's size records ordered by size.
func (s *Server) GetProductSizes(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	sizes, err := s.productService.ListSizes(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"sizes": sizes})
}

// UpsertSizeCounts creates or overwrites size quantities for one product.
func (s *Server) UpsertSizeCounts(c *fiber.Ctx) error {
	var req struct {
		ProductID string              `json:"product_id"`
		Sizes     []service.SizeCount `json:"sizes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpsertSizeCountsInput{ProductID: req.ProductID, Sizes: req.Sizes}
	if err := s.productService.UpsertSizeCounts(c.UserContext(), in); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật thành công!"})
}

// UpdateFeedbackImages replaces the product's feedback-image set.
func (s *Server) UpdateFeedbackImages(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ImageIDs []uint `json:"image_ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.productService.ReplaceFeedbackImages(c.UserContext(), id, req.ImageIDs); err != nil {
		return mapServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Cập nhật thành công"})
}
