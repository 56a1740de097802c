package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/cemunal/contenthub/internal/dto"
	"github.com/cemunal/contenthub/internal/middleware"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/services"
)

type ContentTypeHandler struct {
	contentTypeService *services.ContentTypeService
}

func NewContentTypeHandler(contentTypeService *services.ContentTypeService) *ContentTypeHandler {
	return &ContentTypeHandler{contentTypeService: contentTypeService}
}

func (h *ContentTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	candidate := &models.ContentType{
		Name:             req.Name,
		APIIdentifier:    req.APIIdentifier,
		Description:      req.Description,
		FieldDefinitions: datatypes.JSON(req.FieldDefinitions),
		CreatedByID:      userID,
		UpdatedByID:      userID,
	}

	ct, err := h.contentTypeService.CreateContentType(c.Context(), candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ct)
}

func (h *ContentTypeHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("active") {
		cts, err := h.contentTypeService.ListActive(c.Context())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cts)
	}

	cts, err := h.contentTypeService.ListContentTypes(c.Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(cts)
}

func (h *ContentTypeHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content type not found",
		})
	}

	ct, err := h.contentTypeService.FindByID(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if ct == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content type not found",
		})
	}
	return c.JSON(ct)
}

func (h *ContentTypeHandler) GetByAPIIdentifier(c *fiber.Ctx) error {
	ct, err := h.contentTypeService.FindByAPIIdentifier(c.Context(), c.Params("apiIdentifier"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if ct == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content type not found",
		})
	}
	return c.JSON(ct)
}

func (h *ContentTypeHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content type not found",
		})
	}

	ct, err := h.contentTypeService.DeactivateContentType(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(ct)
}
