package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/cemunal/contenthub/internal/dto"
	"github.com/cemunal/contenthub/internal/middleware"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	authorID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	candidate := &models.Content{
		ContentTypeID: req.ContentTypeID,
		Slug:          req.Slug,
		AuthorID:      authorID,
		Status:        models.ContentStatus(req.Status),
		ContentData:   datatypes.JSON(req.ContentData),
		Metadata:      datatypes.JSON(req.Metadata),
	}

	content, err := h.contentService.CreateContent(c.Context(), candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

// List filters by content_type_id, status and author_id query params,
// AND-combined in that priority order.
func (h *ContentHandler) List(c *fiber.Ctx) error {
	status := models.ContentStatus(c.Query("status"))

	if raw := c.Query("content_type_id"); raw != "" {
		contentTypeID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid content_type_id",
			})
		}
		if status != "" {
			contents, err := h.contentService.ListByContentTypeAndStatus(c.Context(), contentTypeID, status)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(contents)
		}
		contents, err := h.contentService.ListByContentType(c.Context(), contentTypeID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}

	if raw := c.Query("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid author_id",
			})
		}
		contents, err := h.contentService.ListByAuthor(c.Context(), authorID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}

	if term := c.Query("search"); term != "" {
		contents, err := h.contentService.SearchSlug(c.Context(), term)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}

	if from, to := c.Query("published_from"), c.Query("published_to"); from != "" && to != "" {
		fromTime, errFrom := time.Parse(time.RFC3339, from)
		toTime, errTo := time.Parse(time.RFC3339, to)
		if errFrom != nil || errTo != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "published_from and published_to must be RFC3339 timestamps",
			})
		}
		contents, err := h.contentService.ListPublishedBetween(c.Context(), fromTime, toTime)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}

	if status != "" {
		contents, err := h.contentService.ListByStatus(c.Context(), status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(contents)
	}

	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "At least one filter is required",
	})
}

func (h *ContentHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content not found",
		})
	}

	content, err := h.contentService.FindByID(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content not found",
		})
	}
	return c.JSON(content)
}

// GetBySlug resolves a content item by its content type and slug.
func (h *ContentHandler) GetBySlug(c *fiber.Ctx) error {
	contentTypeID, err := uuid.Parse(c.Params("contentTypeId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content not found",
		})
	}

	content, err := h.contentService.FindBySlug(c.Context(), contentTypeID, c.Params("slug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if content == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content not found",
		})
	}
	return c.JSON(content)
}

func (h *ContentHandler) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Content not found",
		})
	}

	content, err := h.contentService.PublishContent(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(content)
}
