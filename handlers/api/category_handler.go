package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/services"
)

// CategoryHandler serves the /categories endpoints.
type CategoryHandler struct {
	service services.ICategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(service services.ICategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// CreateCategory handles POST /categories/. A duplicate name answers 400.
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	category, err := h.service.CreateCategory(c.UserContext(), req.Name, req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNameRequired) || errors.Is(err, services.ErrCategoryCreationFailed) {
			return respondError(c, fiber.StatusBadRequest, "Category creation failed")
		}
		configslog.Log.Error("API - CreateCategory failed", zap.String("name", req.Name), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Category could not be created")
	}
	return c.JSON(newCategoryResponse(*category))
}

// ListCategories handles GET /categories/.
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListCategories failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Categories could not be listed")
	}
	return c.JSON(newCategoryResponses(categories))
}

// DeleteCategory handles DELETE /categories/:id. The category's cards are
// removed with it. A missing id answers 400, matching the card delete.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return respondError(c, fiber.StatusBadRequest, "Category not found")
		}
		configslog.Log.Error("API - DeleteCategory failed", zap.Uint("id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Category could not be deleted")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
