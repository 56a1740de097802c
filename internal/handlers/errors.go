package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cemunal/contenthub/internal/dto"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/repository"
	"github.com/cemunal/contenthub/internal/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Untranslated storage faults fall through as 500s.
func writeServiceError(c *fiber.Ctx, err error) error {
	var dup *services.DuplicateError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: dup.Error(),
		})
	}

	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: invalid.Error(),
		})
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrContentTypeNotFound),
		errors.Is(err, services.ErrContentNotFound),
		errors.Is(err, services.ErrMediaNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrEmptyContent):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserInactive):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	// A race slipped past the advisory pre-check and hit the unique index.
	if repository.IsDuplicateKey(err) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: "a unique field value is already taken",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
