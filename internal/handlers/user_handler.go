package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cemunal/contenthub/internal/dto"
	"github.com/cemunal/contenthub/internal/models"
	"github.com/cemunal/contenthub/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	candidate := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	}

	user, err := h.userService.CreateUser(c.Context(), candidate)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List supports optional role and active filters.
func (h *UserHandler) List(c *fiber.Ctx) error {
	if role := c.Query("role"); role != "" {
		users, err := h.userService.ListByRole(c.Context(), models.Role(role))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}

	if c.QueryBool("active") {
		users, err := h.userService.ListActiveUsers(c.Context())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(users)
	}

	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(users)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	user, err := h.userService.FindByID(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	return c.JSON(user)
}

func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	user, err := h.userService.FindByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return writeServiceError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	return c.JSON(user)
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}

	user, err := h.userService.DeactivateUser(c.Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	token, user, err := h.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
		Role:        string(user.Role),
	})
}
