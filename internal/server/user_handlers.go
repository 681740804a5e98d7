package server

import (
	"shopadmin/internal/models"
	"shopadmin/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAdminUsers returns one page of users matching the query filters.
func (s *Server) GetAdminUsers(c *fiber.Ctx) error {
	in := service.ListUsersInput{
		FullName: c.Query("full_name"),
		Phone:    c.Query("phone"),
		Email:    c.Query("email"),
		Page:     parsePage(c),
	}

	page, err := s.userService.AdminListUsers(c.UserContext(), in)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(page)
}

// CreateAdminUser creates an account with an explicit role.
func (s *Server) CreateAdminUser(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.UserContext(), service.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// DeleteUser removes an account.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Xóa tài khoản thành công!"})
}

// GetMyImages lists the authenticated user's uploaded images.
func (s *Server) GetMyImages(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	images, err := s.imageService.ListUserImages(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"images": images})
}

// GetMyProfile returns the authenticated user's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile updates the authenticated user's profile fields.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:   userID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cập nhật thành công!",
		"user":    user,
	})
}

// ChangeMyPassword verifies the old password and sets a new one.
func (s *Server) ChangeMyPassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	err := s.userService.ChangePassword(c.UserContext(), service.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Đổi mật khẩu thành công!"})
}
