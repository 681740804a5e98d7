package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetBrands lists all brands.
func (s *Server) GetBrands(c *fiber.Ctx) error {
	brands, err := s.catalogService.ListBrands(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"brands": brands})
}

// GetCategories lists all categories.
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.catalogService.ListCategories(c.UserContext())
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}
