package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/services"
)

// CardHandler serves the card endpoints.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(service services.ICardService) *CardHandler {
	return &CardHandler{service: service}
}

// CreateCard handles POST /cards. An unknown category answers 404, any other
// insert failure 400. The response embeds the resolved category.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req CreateCardRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	card, err := h.service.CreateCard(c.UserContext(), services.CreateCardInput{
		Front:      req.Front,
		Back:       req.Back,
		CategoryID: req.CategoryID,
		UserID:     req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCardCategoryNotFound):
			return respondError(c, fiber.StatusNotFound, "Category not found")
		case errors.Is(err, services.ErrCardCreationFailed), errors.Is(err, services.ErrCardInvalidInput):
			return respondError(c, fiber.StatusBadRequest, "Card creation failed")
		}
		configslog.Log.Error("API - CreateCard failed", zap.Uint("category_id", req.CategoryID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Card could not be created")
	}
	return c.JSON(newCardResponse(*card))
}

// ListAllCards handles GET /all: every card joined with its category.
func (h *CardHandler) ListAllCards(c *fiber.Ctx) error {
	cards, err := h.service.ListAllCards(c.UserContext())
	if err != nil {
		configslog.Log.Error("API - ListAllCards failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Cards could not be listed")
	}
	return c.JSON(newCardResponses(cards))
}

// ListCards handles GET /cards?page&page_size.
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	params, err := parseListParams(c)
	if err != nil {
		return err
	}

	cards, totalCount, err := h.service.ListCardsPaged(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("API - ListCards failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Cards could not be listed")
	}
	return c.JSON(PaginatedCardsResponse{
		Cards:       newCardResponses(cards),
		TotalCount:  totalCount,
		CurrentPage: params.Page,
		CategoryID:  0,
	})
}

// ListCardsByCategory handles GET /categories/:id/cards/?page&page_size.
func (h *CardHandler) ListCardsByCategory(c *fiber.Ctx) error {
	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	params, err := parseListParams(c)
	if err != nil {
		return err
	}

	cards, totalCount, err := h.service.ListCardsByCategory(c.UserContext(), categoryID, params)
	if err != nil {
		if errors.Is(err, services.ErrCardCategoryNotFound) {
			return respondError(c, fiber.StatusNotFound, "Category not found")
		}
		configslog.Log.Error("API - ListCardsByCategory failed", zap.Uint("category_id", categoryID), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Cards could not be listed")
	}
	return c.JSON(PaginatedCardsResponse{
		Cards:       newCardResponses(cards),
		TotalCount:  totalCount,
		CurrentPage: params.Page,
		CategoryID:  categoryID,
	})
}

// SearchCards handles GET /search?query&page&page_size. An empty query
// answers 422.
func (h *CardHandler) SearchCards(c *fiber.Ctx) error {
	term := c.Query("query")
	params, err := parseListParams(c)
	if err != nil {
		return err
	}

	cards, totalCount, err := h.service.SearchCards(c.UserContext(), term, params)
	if err != nil {
		if errors.Is(err, services.ErrSearchTermRequired) {
			return respondError(c, fiber.StatusUnprocessableEntity, "Search term is required")
		}
		configslog.Log.Error("API - SearchCards failed", zap.String("query", term), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Search failed")
	}
	return c.JSON(SearchCardsResponse{
		Cards:       newCardResponses(cards),
		TotalCount:  totalCount,
		CurrentPage: params.Page,
		SearchTerm:  term,
	})
}

// DeleteCard handles DELETE /cards/:id. A missing or already-deleted id
// answers 400, not an idempotent success.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteCard(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return respondError(c, fiber.StatusBadRequest, "Card not found")
		}
		configslog.Log.Error("API - DeleteCard failed", zap.Uint("id", id), zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "Card could not be deleted")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
