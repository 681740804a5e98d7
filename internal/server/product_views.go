package server

import (
	"shopadmin/internal/models"
	"shopadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProductListPage renders the admin product table with filters and
// pagination.
func (s *Server) ProductListPage(c *fiber.Ctx) error {
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

	brands, err := s.catalogService.ListBrands(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	categories, err := s.catalogService.ListCategories(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Render("admin/products", fiber.Map{
		"Title":      "Quản lý sản phẩm",
		"Page":       page,
		"Brands":     brands,
		"Categories": categories,
		"Filter":     in,
	})
}

// ProductCreatePage renders the product creation form.
func (s *Server) ProductCreatePage(c *fiber.Ctx) error {
	brands, err := s.catalogService.ListBrands(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	categories, err := s.catalogService.ListCategories(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}

	userID := c.Locals("userID").(uint)
	images, err := s.imageService.ListUserImages(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return c.Render("admin/product_form", fiber.Map{
		"Title":      "Thêm sản phẩm",
		"Brands":     brands,
		"Categories": categories,
		"Images":     images,
		"Sizes":      models.SizesVN,
	})
}

// ProductEditPage renders the edit form for one product. The slug in the
// path is decorative; lookup goes by id.
func (s *Server) ProductEditPage(c *fiber.Ctx) error {
	id, err := parseProductID(c, "id")
	if err != nil {
		return nil
	}

	product, err := s.productService.GetProduct(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}

	brands, err := s.catalogService.ListBrands(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	categories, err := s.catalogService.ListCategories(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}

	userID := c.Locals("userID").(uint)
	images, err := s.imageService.ListUserImages(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}

	// Index the existing quantities so the form can show every valid size.
	quantities := make(map[int]int, len(product.Sizes))
	for _, ps := range product.Sizes {
		quantities[ps.Size] = ps.Quantity
	}

	return c.Render("admin/product_form", fiber.Map{
		"Title":      "Sửa sản phẩm",
		"Product":    product,
		"Brands":     brands,
		"Categories": categories,
		"Images":     images,
		"Sizes":      models.SizesVN,
		"Quantities": quantities,
	})
}
