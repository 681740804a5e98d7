package server

import (
	"errors"
	"strconv"

	"shopadmin/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten signals that the handler already wrote an error
// response and the caller should return nil.
var errResponseWritten = errors.New("error response written")

// parseID parses a numeric path parameter and writes a 400 response on
// failure. When the returned error is errResponseWritten the handler
// should return nil.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseProductID parses a product UUID path parameter.
func parseProductID(c *fiber.Ctx, param string) (string, error) {
	raw := c.Params(param)
	if _, err := uuid.Parse(raw); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid product ID"))
		return "", errResponseWritten
	}
	return raw, nil
}

func humanizeParam(param string) string {
	switch param {
	case "id":
		return "ID"
	default:
		return param
	}
}

// queryUint reads a numeric query parameter used as an id filter. Zero and
// negative values mean "no constraint".
func queryUint(c *fiber.Ctx, key string) uint {
	v := c.QueryInt(key, 0)
	if v < 0 {
		return 0
	}
	return uint(v)
}

// parsePage reads the 1-based page query parameter, defaulting to 1.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// mapServiceError converts service-layer errors to HTTP responses.
func mapServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.CodeUnauthorized:
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
