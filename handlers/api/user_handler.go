package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/services"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	service services.IUserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(service services.IUserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /users/. Posting a known email returns the
// existing user, not an error.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.UserContext(), req.Email)
	if err != nil {
		if errors.Is(err, services.ErrUserEmailRequired) {
			return respondError(c, fiber.StatusBadRequest, err.Error())
		}
		configslog.Log.Error("API - CreateUser failed", zap.String("email", req.Email), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "User could not be created")
	}
	return c.JSON(newUserResponse(*user))
}

// ListUsers handles GET /users/.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListUsers failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Users could not be listed")
	}
	return c.JSON(newUserResponses(users))
}

// ListUserCategories handles GET /users/:id/categories.
func (h *UserHandler) ListUserCategories(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	categories, err := h.service.GetUserCategories(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		configslog.Log.Error("API - ListUserCategories failed", zap.Uint("user_id", userID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Categories could not be listed")
	}
	return c.JSON(newCategoryResponses(categories))
}

// ListUserCards handles GET /users/:id/cards.
func (h *UserHandler) ListUserCards(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	cards, err := h.service.GetUserCards(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return respondError(c, fiber.StatusNotFound, "User not found")
		}
		configslog.Log.Error("API - ListUserCards failed", zap.Uint("user_id", userID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Cards could not be listed")
	}
	return c.JSON(newCardResponses(cards))
}
