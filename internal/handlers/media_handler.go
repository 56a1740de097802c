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

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	var req dto.UploadMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	uploaderID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	candidate := &models.Media{
		Filename:    req.Filename,
		FilePath:    req.FilePath,
		MimeType:    req.MimeType,
		FileSize:    req.FileSize,
		UploaderID:  uploaderID,
		AltText:     req.AltText,
		Title:       req.Title,
		Description: req.Description,
		Tags:        datatypes.JSON(req.Tags),
		Metadata:    datatypes.JSON(req.Metadata),
	}

	media, err := h.mediaService.UploadMedia(c.Context(), candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

func (h *MediaHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Media not found",
		})
	}

	media, err := h.mediaService.FindByID(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if media == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Media not found",
		})
	}
	return c.JSON(media)
}

// List filters by uploader_id, mime_prefix or search, first match wins.
func (h *MediaHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("uploader_id"); raw != "" {
		uploaderID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid uploader_id",
			})
		}
		media, err := h.mediaService.ListByUploader(c.Context(), uploaderID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(media)
	}

	if prefix := c.Query("mime_prefix"); prefix != "" {
		media, err := h.mediaService.FindByMimeTypePrefix(c.Context(), prefix)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(media)
	}

	if term := c.Query("search"); term != "" {
		media, err := h.mediaService.SearchFilename(c.Context(), term)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(media)
	}

	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "At least one filter is required",
	})
}
